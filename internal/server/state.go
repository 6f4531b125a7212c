// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package server

// State is a phase of the application lifecycle. States are strictly
// ordered and the lifecycle only ever moves forward through them.
type State int

const (
	// StateConfiguring covers everything before the listener is open:
	// configuration loading, validation, pipeline assembly.
	StateConfiguring State = iota

	// StateServing means the listener is open and requests are handled.
	StateServing

	// StateStopping means a stop signal was received: the listener no
	// longer accepts new connections while in-flight requests drain.
	StateStopping

	// StateDrained means every in-flight request has completed or the
	// drain timeout expired. Terminal.
	StateDrained
)

func (s State) String() string {
	switch s {
	case StateConfiguring:
		return "configuring"
	case StateServing:
		return "serving"
	case StateStopping:
		return "stopping"
	case StateDrained:
		return "drained"
	default:
		return "unknown"
	}
}
