/*
Package domain contains the core vocabulary of the doro behavior engine.

It defines the closed set of pet states, the input events the engine reacts to,
lifecycle hooks for observability, and the sentinel errors shared by the engine
and its adapters. This package is kept pure and free of external dependencies
like I/O, rendering or persistence, following Hexagonal Architecture principles.

# Key Entities

  - PetState: A behavior mode of the pet (IDLE, CLICKED, DRAGGING, RANDOM_MOVE).
  - Event: A raw pointer input (press, move, release) in global pixel coordinates.
  - LifecycleHooks: Callbacks fired when states are entered or exited and when events are routed.
  - Theme: A named palette used by presentations for the info panel.
*/
package domain
