// Package http implements the HTTP transport layer of sstatic.
//
// Every request is answered with the maintenance page and a 503 status,
// except requests on the optional static route /<static-path>/<file>, which
// are served from the static content store. Cross-cutting concerns such as
// request tracing, access logging and response compression are handled by
// middleware in this package.
package http
