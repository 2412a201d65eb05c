// Package http implements the HTTP transport layer of the travel services.
//
// It exposes one router constructor per service binary (flights, hotels,
// trips, weather, auth) plus the middleware they share. Cross-cutting
// concerns such as bearer-token authentication, request tracing and access
// logging are handled here before requests are delegated to the catalog,
// reservation and service layers.
package http
