/*
Package ports defines the driven ports (interfaces) for the doro engine.

These interfaces decouple the behavior engine from the collaborators it drives
or reads from, allowing the same state machine to run behind a terminal, an HTTP
control surface, or a test recorder.

# Key Interfaces

  - AnimationPlayer, AudioPlayer, Mover, InfoDisplay, TextSink: capability sinks invoked by state handlers.
  - ResourceProvider: Resolves asset keys (e.g. "Idle") to ordered asset identifiers.
  - ConfigReader: Typed configuration getters keyed by section and option.
  - ConfigStore: Loads and saves configuration values (file, redis, memory).
  - Watchable: Notifies about backend changes so configuration can be reloaded.
*/
package ports
