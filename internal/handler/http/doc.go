// Package http implements the HTTP transport layer of the remote save
// store. It provides middleware, route handlers, and request/response
// utilities for the REST API. Authentication and logging concerns are
// handled at this layer before requests reach the storage layer.
package http
