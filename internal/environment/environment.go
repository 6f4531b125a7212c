// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

// Package environment resolves the deployment environment the process runs
// in. The resolved [Descriptor] is a read-only snapshot taken once at
// startup and shared by every request-processing stage; nothing in the
// application mutates it afterwards.
package environment

import (
	"os"
	"strings"
)

// Environment variable names consulted by [Resolve].
const (
	// EnvironmentVar selects the environment name (e.g. "development",
	// "staging", "production"). Unset means production.
	EnvironmentVar = "APP_ENVIRONMENT"

	// ContainerVar is the container indicator. The value "true" marks the
	// process as running inside a container, which causes the config layer
	// to merge an additional container-specific settings file. Any other
	// value (or unset) means "not in a container".
	ContainerVar = "RUNNING_IN_CONTAINER"
)

// Well-known environment names.
const (
	Development = "development"
	Production  = "production"
)

// Descriptor is a read-only snapshot of the resolved deployment environment:
// the environment name, whether the process runs inside a container, and the
// machine identity the process runs on.
type Descriptor struct {
	Name        string
	InContainer bool
	Host        string
}

// Resolve builds a Descriptor from the process environment. It is intended
// to be called exactly once, before any other component starts.
//
// The environment name is lower-cased so comparisons are case-insensitive;
// an unset APP_ENVIRONMENT defaults to production, matching the safe choice
// for the HTTPS-redirect stage. If the hostname cannot be determined the
// Host field is left as "unknown" rather than failing startup.
func Resolve() Descriptor {
	name := strings.ToLower(strings.TrimSpace(os.Getenv(EnvironmentVar)))
	if name == "" {
		name = Production
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}

	return Descriptor{
		Name:        name,
		InContainer: os.Getenv(ContainerVar) == "true",
		Host:        host,
	}
}

// IsDevelopment reports whether the descriptor names the local-development
// environment. The HTTPS-redirect stage is suppressed only in this case.
func (d Descriptor) IsDevelopment() bool {
	return d.Name == Development
}
