// Package logger wraps zerolog behind a small component-scoped interface so
// that the rest of the application can log without importing zerolog.
package logger
