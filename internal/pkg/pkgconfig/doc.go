// Package pkgconfig provides a small abstraction for reading configuration values.
//
// The application expects config values to come from a concrete implementation
// (for example Viper). Business code should depend on the Config interface so it
// stays easy to test and does not care where values come from (file, env, etc).
//
// Structured sections are decoded with Decode and checked with struct tags
// understood by go-playground/validator.
package pkgconfig
