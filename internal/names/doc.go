// Package names maps legacy numeric line identifiers to canonical object
// names. The source games do not necessarily ship an English translation,
// so the converter cannot derive object names from in-game strings; the
// tables in this package are the authoritative source for naming converted
// objects.
//
// The registry is built once at startup and is read-only afterwards, which
// makes it safe for unsynchronized concurrent lookups. A lookup miss is an
// expected condition: many legacy identifiers intentionally have no
// translated name, and callers are expected to handle absence rather than
// treat it as corruption.
package names
