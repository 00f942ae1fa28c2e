// Package observability turns pet lifecycle hooks into Prometheus metrics and debug logs.
package observability
