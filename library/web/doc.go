// Package web is the HTTP surface of the library: server-rendered pages for librarians, a JSON
// API for the remote client and the Prometheus endpoint.
//
// Every request that is not public is authenticated with HTTP basic auth against the configured
// users. The user's groups become the groups of the core.Actor that is passed to the handlers,
// so the permission checks themselves stay in the features.
package web
