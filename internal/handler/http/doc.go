// Package http implements the HTTP transport layer of the users API.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, panic recovery and CORS are handled in this
// package before requests are delegated to the service layer. Every
// failure is answered with a JSON [models.ErrorResponse].
package http
