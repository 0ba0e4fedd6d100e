// Package testutil holds helpers shared by the integration tests: a
// goroutine-safe log buffer, a project tree writer and a one-shot app runner.
package testutil
