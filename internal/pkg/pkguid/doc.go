// Package pkguid generates identifiers.
//
// StringID backs gateway correlation IDs (UUIDv7). NumberID backs the request
// IDs the transport stamps on every Cityworks call (Snowflake).
package pkguid
