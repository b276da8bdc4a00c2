// Package server runs the HTTP server of the users API.
//
// It covers the server lifecycle: binding the listener, serving, and a
// bounded graceful shutdown on SIGINT, SIGTERM or SIGQUIT.
package server
