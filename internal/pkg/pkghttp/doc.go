// Package pkghttp builds outbound *http.Client values with bounded timeouts
// and connection pools. Zero values in the configuration fall back to defaults
// so a client can never hang forever.
package pkghttp
