package domain

import "errors"

// ErrResourceMissing is returned when an asset cannot be resolved or read.
var ErrResourceMissing = errors.New("resource missing")

// ErrInvalidTransition is reported when a transition request cannot be applied
// (popping the base state, or targeting a state outside the closed set).
var ErrInvalidTransition = errors.New("invalid transition")

// ErrUnknownState is returned when a state name or value is not recognized.
var ErrUnknownState = errors.New("unknown state")

// ErrRunnerStopped is returned when work is posted to a dispatch sequence that is no longer running.
var ErrRunnerStopped = errors.New("runner stopped")
