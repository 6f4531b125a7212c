// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package pipeline

import "net/http"

// Hint is a symbolic position declaration for a stage, expressed relative
// to the security-header stage so ordering intent stays legible.
type Hint string

const (
	// HintNone places the stage wherever it was registered without any
	// ordering claim.
	HintNone Hint = ""
	// HintBeforeSecurity declares that the stage must precede the
	// security stage. Restricted by policy to recovery and health stages.
	HintBeforeSecurity Hint = "before_security"
	// HintAfterSecurity declares that the stage must follow the security
	// stage, so its responses carry the security headers.
	HintAfterSecurity Hint = "after_security"
	// HintTerminal declares the final stage of the chain, typically the
	// router delegating to business endpoints.
	HintTerminal Hint = "terminal"
)

// Kind categorizes a stage by the concern it implements. The composer uses
// it to identify the security stage and to enforce the before-security
// policy; it also shows up in startup diagnostics.
type Kind string

const (
	KindRecovery       Kind = "recovery"
	KindHealth         Kind = "health"
	KindSecurity       Kind = "security"
	KindStatic         Kind = "static"
	KindObservability  Kind = "observability"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindGeneric        Kind = "generic"
)

// Stage is a named unit of request processing: a standard net/http
// middleware plus the metadata the composer orders it by. Stages must be
// stateless across requests; anything request-scoped travels in the
// request context.
type Stage struct {
	Name       string
	Kind       Kind
	Hint       Hint
	Middleware func(http.Handler) http.Handler
}

// Composer accumulates stages in registration order and validates their
// position hints at build time.
type Composer struct {
	stages []Stage
}

// NewComposer returns an empty Composer.
func NewComposer() *Composer {
	return &Composer{stages: make([]Stage, 0, 8)}
}

// Register appends a stage to the pipeline in call order. Ordering claims
// are declared through the stage's Hint and checked by Build, not here:
// registration never fails, composition does.
func (c *Composer) Register(stage Stage) *Composer {
	c.stages = append(c.stages, stage)
	return c
}

// Build validates the registered stages against their hints and freezes
// them into an immutable Pipeline ending in terminal.
//
// Build fails with an [OrderingError] if any stage's declared hint
// contradicts its actual position, if a before-security stage is of a kind
// the policy does not allow there, or if the chain does not contain exactly
// one security stage. A failed Build leaves nothing partially served.
func (c *Composer) Build(terminal http.Handler) (*Pipeline, error) {
	if terminal == nil {
		return nil, ErrNilTerminal
	}

	securityIdx := -1
	for i, stage := range c.stages {
		if stage.Middleware == nil {
			return nil, &OrderingError{Stage: stage.Name, Hint: stage.Hint, Reason: "stage has no middleware"}
		}
		if stage.Kind != KindSecurity {
			continue
		}
		if securityIdx >= 0 {
			return nil, &OrderingError{Stage: stage.Name, Hint: stage.Hint, Reason: "second security stage registered"}
		}
		securityIdx = i
	}
	if securityIdx < 0 {
		return nil, ErrNoSecurityStage
	}

	for i, stage := range c.stages {
		switch stage.Hint {
		case HintNone:
		case HintBeforeSecurity:
			if i > securityIdx {
				return nil, &OrderingError{Stage: stage.Name, Hint: stage.Hint, Reason: "registered after the security stage"}
			}
			if stage.Kind != KindRecovery && stage.Kind != KindHealth {
				return nil, &OrderingError{Stage: stage.Name, Hint: stage.Hint, Reason: "only recovery and health stages may run before security"}
			}
		case HintAfterSecurity:
			if i < securityIdx {
				return nil, &OrderingError{Stage: stage.Name, Hint: stage.Hint, Reason: "registered before the security stage"}
			}
		case HintTerminal:
			if i != len(c.stages)-1 {
				return nil, &OrderingError{Stage: stage.Name, Hint: stage.Hint, Reason: "terminal stage is not last"}
			}
		default:
			return nil, &OrderingError{Stage: stage.Name, Hint: stage.Hint, Reason: "unknown position hint"}
		}
	}

	// Freeze. The first registered stage is the outermost wrapper, so it
	// is the first to see the request.
	handler := terminal
	names := make([]string, len(c.stages))
	for i := len(c.stages) - 1; i >= 0; i-- {
		handler = c.stages[i].Middleware(handler)
		names[i] = c.stages[i].Name
	}

	return &Pipeline{handler: handler, names: names}, nil
}

// Pipeline is the frozen, ordered sequence of stages applied to every
// request. It is immutable after Build and safe to share across all
// concurrent request flows without locking.
type Pipeline struct {
	handler http.Handler
	names   []string
}

// ServeHTTP runs the request through every stage in pipeline order.
func (p *Pipeline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.handler.ServeHTTP(w, r)
}

// Stages returns the stage names in request-processing order, for startup
// diagnostics. The returned slice is a copy.
func (p *Pipeline) Stages() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}
