// Package http implements the HTTP transport layer of the application.
//
// It exposes the standard middleware stages — panic recovery, health
// probing, security headers, static assets, tracing, access logging,
// metrics, authentication and authorization — and wires them into a
// request pipeline in front of a chi router. Cross-cutting concerns are
// handled in this package before requests reach adopter route handlers.
package http
