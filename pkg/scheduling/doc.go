/*
Package scheduling provides task queueing primitives for dataflow graph
execution.

This package offers components for distributing ready-to-run tasks among
workers:

  - readyqueue: Unbounded queue that pops a random queued item, spreading
    work fairly without tracking per-task priority
  - readyqueue/distributed: The same semantics shared across application
    instances through Redis

Ready Queue:

The ready queue feeds workers with tasks in random order:

	q := readyqueue.New[Task]()

	// Producer
	q.Push(task)

	// Worker
	for {
		task, ok := q.Pop()
		if !ok {
			return // queue terminated
		}
		run(task)
	}

	// Graceful stop: refuse new tasks, let workers finish the backlog
	q.Drain()

Distributed Ready Queue:

Multiple instances can share one queue through Redis:

	q, err := distributed.New(distributed.Config{
		Redis: rdb,
		Key:   "tasks",
	})

	q.Push(ctx, "job-42")
	job, ok, err := q.Pop(ctx)

All scheduling components are thread-safe. The distributed variant
integrates with context for cancellation and timeout handling.
*/
package scheduling
