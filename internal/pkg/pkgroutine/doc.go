// Package pkgroutine contains helpers for running goroutines safely.
//
// The Manager type limits concurrency, collects returned errors, and logs
// panics so that background work does not crash the process silently.
// Go starts a task on a Manager and hands back a Future that resolves exactly
// once with the task's value or error.
package pkgroutine
