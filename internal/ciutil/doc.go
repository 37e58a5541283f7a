// Package ciutil detects CI environments and resolves the PostgreSQL URL that
// integration tests run against.
package ciutil
