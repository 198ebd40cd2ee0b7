/*
Package observability provides tools for monitoring the maze engine.

It turns lifecycle hooks into Prometheus metrics and structured log lines, and
combines several hook sets into one so an engine can feed both.
*/
package observability
