// Package http implements the REST transport of the marketplace.
//
// It exposes route wiring, request handlers, and middleware used by the
// /api/v1 API. Request tracing, access logging, response compression,
// bearer authentication and the admin gate are handled in this package before
// requests are delegated to the service layer.
package http
