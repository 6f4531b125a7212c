// Package startup performs the fail-fast checks that run between
// configuration loading and the opening of the listener.
//
// Adopters declare the configuration keys their deployment cannot run
// without; a missing key aborts startup with an error naming exactly that
// key. On success the package emits the single startup announcement
// record carrying the resolved environment and host.
package startup
