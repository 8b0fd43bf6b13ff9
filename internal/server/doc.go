// Package server runs the reference table server: it binds the HTTP
// listener, serves the chi router and shuts down gracefully on
// SIGTERM, SIGINT or SIGQUIT.
package server
