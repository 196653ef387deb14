// Package app wires a conversion run together: it builds the logger,
// loads the job configuration, constructs the name registry, drives the
// three-stage pipeline, and exports the assembled modpacks.
package app
