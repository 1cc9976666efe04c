// Package observability reports gate operations to logs and metrics.
//
// The gate calls Observer.OnOperation once per operation, after releasing its
// lock. Provided observers:
//
//   - SlogObserver: structured logs through log/slog
//   - PrometheusObserver: latency histogram and outcome counters
//   - BasicObserver: in-memory counters for tests
//   - MultiObserver / Combine: fan-out
package observability
