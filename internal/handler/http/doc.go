// Package http implements the HTTP transport of the reference table server.
//
// It wires the table, row, schema, manifest and file routes onto a chi
// router and carries the cross-cutting middleware: trace ids, access
// logging, the optional Authorization check and response compression.
// Requests are delegated to [service.TableService].
package http
