// Package config provides configuration loading, merging, and validation
// facilities for the application skeleton.
//
// Configuration is assembled from multiple layered sources in the following
// priority order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Container JSON config file (only when RUNNING_IN_CONTAINER=true)
//  4. JSON config file
//  5. Built-in defaults
//
// The main entry point is [GetStructuredConfig], which loads all layers,
// merges them, and validates the result. Adopters that require certain keys
// to be present at startup declare them through [StructuredConfig.Lookup]
// keys passed to the startup validator.
package config
