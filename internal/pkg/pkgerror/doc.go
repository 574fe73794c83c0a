// Package pkgerror defines the structured error type used across the application.
//
// Every failure surfaced by the Cityworks client is an *Error carrying:
//   - A fixed classification name shared by all instances.
//   - A numeric code that identifies the call site that produced it.
//   - The service-reported messages, when the remote service rejected the call.
//   - Arbitrary info (for example the offending input) for debugging.
//
// The Type of an error is used at the edge (handlers) to pick an HTTP status.
package pkgerror
