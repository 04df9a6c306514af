/*
Package observability provides tools for monitoring the spotlight engine.

Metrics exposes Prometheus collectors fed by domain.LifecycleHooks, LogHooks
writes the same events to a slog.Logger, and Chain fans one event out to
several hook sets.
*/
package observability
