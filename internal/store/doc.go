// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, so the services run unchanged against
// PostgreSQL (through gorm) or the in-memory implementation.
package store
