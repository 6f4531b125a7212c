// Package pipeline assembles the ordered chain of request-processing stages
// every incoming request passes through.
//
// Stages are registered on a [Composer] in the order they should see the
// request, each carrying a symbolic position hint relative to the single
// security-header stage. Build validates the declared hints against the
// actual registration order and freezes the result into an immutable
// [Pipeline]; a violated hint fails composition with an [OrderingError]
// before the listener ever binds, so a partially-ordered pipeline is never
// served.
//
// Only fail-fast error handling and liveness probes may be placed before
// the security stage: those must keep functioning even when the security
// stage itself is misconfigured.
package pipeline
