// Package telemetry provides optional Prometheus instrumentation for facade
// operations — documents appended, verification outcomes, forks detected.
// A Metrics value is safe to use unregistered (no-op) so embedding the core
// never forces a caller to expose a /metrics endpoint.
package telemetry
