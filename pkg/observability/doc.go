/*
Package observability provides Prometheus instrumentation for bitlab.

Metrics are fed by domain.LifecycleHooks, so any host embedding the library can count
gate evaluations, conversions, classifications and explanation requests without the
widgets knowing about Prometheus.
*/
package observability
