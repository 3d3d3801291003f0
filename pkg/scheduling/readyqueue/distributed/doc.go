// Package distributed provides a randomized ready queue shared across
// multiple application instances, using Redis as the coordination backend.
//
// The queue mirrors the semantics of the in-process readyqueue package:
// any queued item is equally likely to be popped next, pushes are refused
// after Drain or Shutdown, draining serves the remaining items while
// shutdown abandons them. Here the random pop comes for free: items live
// in a Redis set and SPOP removes a uniformly random member.
//
// # Quick Start
//
//	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//
//	config := distributed.DefaultConfig()
//	config.Redis = rdb
//	config.Key = "image_tasks"
//
//	q, err := distributed.New(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer q.Close()
//
//	ctx := context.Background()
//	_ = q.Push(ctx, "job-42")
//
//	task, ok, err := q.Pop(ctx)
//	if ok {
//		process(task)
//	}
//
// # Termination
//
// Drain and Shutdown write a shared state key, so a single call from any
// instance stops pushes everywhere. State transitions only escalate: once
// shut down, a later Drain is a no-op.
//
// # Waiting
//
// Redis offers no cross-client condition variable for sets, so Pop waits
// by polling at Config.PollInterval. Cancel the context to abandon a wait.
package distributed
