// Package pkgtransport performs remote calls against a Cityworks server.
//
// A Client posts a JSON payload to {BaseURL}/Services/{path} as the form
// field "data" (plus "token" once authenticated) and decodes the response
// envelope. Any failure is returned as a *pkgerror.Error: TypeService when the
// server answered with a non-zero Status, TypeTransport for everything else.
//
// The client holds no per-call state and is safe for concurrent use. It does
// not retry.
package pkgtransport
