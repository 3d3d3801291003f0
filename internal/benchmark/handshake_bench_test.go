package benchmark

import (
	"sync"
	"testing"

	"github.com/vnykmshr/dagflow/pkg/streaming/handshake"
)

// BenchmarkHandshakeRoundTrip measures one full fill/push/pull/drain
// cycle between two goroutines.
func BenchmarkHandshakeRoundTrip(b *testing.B) {
	policies := []struct {
		name   string
		policy handshake.PolicyKind
	}{
		{"async", handshake.Async},
		{"unified", handshake.Unified},
	}

	for _, p := range policies {
		b.Run(p.name, func(b *testing.B) {
			cfg := handshake.DefaultConfig[int]()
			cfg.Policy = p.policy
			ch, err := handshake.NewWithConfig(cfg)
			if err != nil {
				b.Fatalf("failed to create channel: %v", err)
			}

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < b.N; i++ {
					ch.Pull()
					_ = ch.Drain()
				}
			}()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ch.Fill(i)
				ch.Push()
			}
			b.StopTimer()
			wg.Wait()
		})
	}
}

// BenchmarkHandshakeManualStepping measures the uncontended state machine
// driven from a single goroutine.
func BenchmarkHandshakeManualStepping(b *testing.B) {
	cfg := handshake.DefaultConfig[int]()
	cfg.Policy = handshake.Manual
	ch, err := handshake.NewWithConfig(cfg)
	if err != nil {
		b.Fatalf("failed to create channel: %v", err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ch.Fill(i)
		ch.Push()
		ch.Pull()
		_ = ch.Drain()
	}
}

// BenchmarkHandshakeStep measures the pure transition function.
func BenchmarkHandshakeStep(b *testing.B) {
	b.ReportAllocs()
	state := handshake.EmptyEmpty
	for i := 0; i < b.N; i++ {
		state, _ = handshake.Step(state, handshake.SourceFill)
		state, _ = handshake.Step(state, handshake.Push)
		state, _ = handshake.Step(state, handshake.SinkDrain)
	}
}
