// Package orchestrator wires the document → form → context → render pipeline,
// providing dependency injection friendly helpers for consumers that prefer a
// single entry point.
package orchestrator
