package handshake

import (
	"testing"

	"github.com/vnykmshr/dagflow/internal/testutil"
)

func TestStepTable(t *testing.T) {
	tests := []struct {
		name        string
		state       State
		event       Event
		wantState   State
		wantOutcome Outcome
	}{
		{"fill from empty_empty", EmptyEmpty, SourceFill, FullEmpty, Advanced},
		{"fill from empty_full", EmptyFull, SourceFill, FullFull, Advanced},

		{"drain from empty_full", EmptyFull, SinkDrain, EmptyEmpty, Advanced},
		{"drain from full_full", FullFull, SinkDrain, FullEmpty, Advanced},

		{"push from full_empty", FullEmpty, Push, EmptyFull, Swapped},
		{"push from full_full", FullFull, Push, FullFull, Blocked},
		{"push from empty_empty", EmptyEmpty, Push, EmptyEmpty, Completed},
		{"push from empty_full", EmptyFull, Push, EmptyFull, Completed},

		{"pull from full_empty", FullEmpty, Pull, EmptyFull, Swapped},
		{"pull from empty_empty", EmptyEmpty, Pull, EmptyEmpty, Blocked},
		{"pull from empty_full", EmptyFull, Pull, EmptyFull, Completed},
		{"pull from full_full", FullFull, Pull, FullFull, Completed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotState, gotOutcome := Step(tt.state, tt.event)
			testutil.AssertEqual(t, gotState, tt.wantState)
			testutil.AssertEqual(t, gotOutcome, tt.wantOutcome)
		})
	}
}

func TestStepDeterministic(t *testing.T) {
	// Applying the same event to the same state twice yields the same result.
	for _, s := range []State{EmptyEmpty, FullEmpty, EmptyFull, FullFull} {
		for _, e := range []Event{Push, Pull} {
			s1, o1 := Step(s, e)
			s2, o2 := Step(s, e)
			testutil.AssertEqual(t, s1, s2)
			testutil.AssertEqual(t, o1, o2)
		}
	}
}

func TestStepPanicsOnProtocolViolation(t *testing.T) {
	tests := []struct {
		name  string
		state State
		event Event
	}{
		{"fill with source full", FullEmpty, SourceFill},
		{"fill with both full", FullFull, SourceFill},
		{"drain with sink empty", EmptyEmpty, SinkDrain},
		{"drain with only source full", FullEmpty, SinkDrain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("Step(%v, %v) should panic", tt.state, tt.event)
				}
			}()
			Step(tt.state, tt.event)
		})
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{EmptyEmpty, "empty_empty"},
		{FullEmpty, "full_empty"},
		{EmptyFull, "empty_full"},
		{FullFull, "full_full"},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.state.String(), tt.want)
	}
}

func TestEventString(t *testing.T) {
	testutil.AssertEqual(t, SourceFill.String(), "source_fill")
	testutil.AssertEqual(t, Push.String(), "push")
	testutil.AssertEqual(t, Pull.String(), "pull")
	testutil.AssertEqual(t, SinkDrain.String(), "sink_drain")
}

func TestRoundTripIdempotence(t *testing.T) {
	// Cycling fill -> transfer -> drain always comes back to empty_empty,
	// no matter which side drives the transfer.
	state := EmptyEmpty
	for round := 0; round < 8; round++ {
		transfer := Push
		if round%2 == 1 {
			transfer = Pull
		}

		state, _ = Step(state, SourceFill)
		testutil.AssertEqual(t, state, FullEmpty)

		var outcome Outcome
		state, outcome = Step(state, transfer)
		testutil.AssertEqual(t, state, EmptyFull)
		testutil.AssertEqual(t, outcome, Swapped)

		state, _ = Step(state, SinkDrain)
		testutil.AssertEqual(t, state, EmptyEmpty)
	}
}
