// Package prometheus provides Prometheus collectors for sessionkit metrics.
//
// [NewPrometheusExporter] accepts a [sessionkit.Client] and exposes an [http.Handler]
// that renders all sessionkit counters and histograms in Prometheus text exposition
// format. Counter names are prefixed sessionkit_*_total; the single histogram is
// sessionkit_guard_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate client state.
package prometheus
