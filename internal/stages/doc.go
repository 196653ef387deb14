// Package stages holds the three concrete pipeline stages of a conversion
// run. The pre-processor reads the legacy archives into an engine-agnostic
// intermediate form, the processor translates that form into target-format
// objects and media, and the post-processor assembles the results into
// immutable modpacks for the exporter.
package stages
