// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package pipeline

import (
	"errors"
	"fmt"
)

// Composition errors returned by [Composer.Build]. All of them are
// startup-time, fatal: a pipeline that fails to compose is never served.
var (
	// ErrNilTerminal indicates Build was called without a terminal handler.
	ErrNilTerminal = errors.New("pipeline has no terminal handler")
	// ErrNoSecurityStage indicates no stage of [KindSecurity] was
	// registered, leaving the position hints without a reference point.
	ErrNoSecurityStage = errors.New("pipeline has no security stage")
)

// OrderingError reports a stage whose declared position hint contradicts
// its actual position in the registered sequence, identifying the offending
// stage and the hint it declared.
type OrderingError struct {
	Stage  string
	Hint   Hint
	Reason string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("pipeline ordering violated by stage %q (hint %q): %s", e.Stage, e.Hint, e.Reason)
}
