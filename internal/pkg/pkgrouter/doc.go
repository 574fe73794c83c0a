// Package pkgrouter wraps httprouter with the middleware and codecs shared by
// every gateway endpoint.
//
// Endpoints return a payload or an error; a *pkgerror.Error is rendered with
// its code, name and service messages, anything else as a 500.
package pkgrouter
