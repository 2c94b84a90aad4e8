// Package metrics exposes snapshot load statistics as Prometheus collectors.
//
// A Registry is attached to the reconcile engine as its Observer and updated
// after every load. Handler serves the private registry, typically mounted at
// /metrics next to the order API.
package metrics
