// Package store defines the persistence interfaces for the bookstore API
// along with the sentinel errors shared by all implementations. Concrete
// implementations live in internal/platform/postgres.
package store
