// Package http implements the REST API of oyou-server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as CORS, request tracing, access logging, compression,
// token verification and role checks are handled in this package before
// requests are delegated to the service layer.
//
// Resource handlers return store results verbatim: a missing document is
// written as JSON null and an empty listing as [], never as 404.
package http
