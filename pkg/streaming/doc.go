/*
Package streaming provides data transfer primitives for connecting stages
of a dataflow graph.

This package currently provides one component:

  - handshake: Single-item channel where producer and consumer exchange
    slots through an explicit fill/push/pull/drain protocol

Basic usage:

	ch := handshake.New[Frame]()

	// Producer
	ch.Fill(frame)
	ch.Push()

	// Consumer
	ch.Pull()
	frame := ch.Drain()

Unlike a buffered Go channel, the handshake channel makes every state of
the transfer observable, which is what a graph executor needs to decide
when each node is runnable.
*/
package streaming
