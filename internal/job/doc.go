// Package job loads and validates conversion job files. A job is written
// in HCL and describes one conversion run: where the legacy game install
// lives, where converted output goes, and which modpacks to assemble from
// the converted assets. Jobs may be split across several files in a
// directory; the loader merges them into a single validated model before
// any stage runs.
package job
