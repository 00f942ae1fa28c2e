/*
Package doro is the behavior engine of a desktop virtual pet.

A Pet is a reactive state machine. It decides which animation and sound the pet
presents and how it reacts to pointer input (press, move, release) and to its own
timers (click expiry, idle wandering), while following configuration changes live.

# Concept

Behavior modes are states on a stack. IDLE is always at the bottom; transient
reactions such as CLICKED or DRAGGING are pushed on top and pop themselves when
they are done, returning control to whatever was underneath.

	IDLE --click--> CLICKED --18s--> IDLE
	IDLE --press+move--> DRAGGING --release--> IDLE
	IDLE --wander--> RANDOM_MOVE --leg ends--> IDLE

The engine never draws or plays anything itself. Side effects go through
capability sinks (ports.AnimationPlayer, ports.AudioPlayer, ports.Mover,
ports.InfoDisplay) that the host injects, which keeps the core testable with
virtual time and recording sinks.

# Concurrency

A Pet is not safe for concurrent use. All calls, including timer callbacks,
must run on one dispatch sequence. pkg/runner provides that sequence for hosts
with several event sources.

# Usage

	pet := doro.New(
		doro.WithSinks(runtime.Sinks{Animation: screen, Mover: screen}),
		doro.WithResources(assets),
	)
	r := runner.New(pet)
	go r.Run(ctx)

	consumed, err := r.Send(ctx, domain.Press(10, 10))
*/
package doro
