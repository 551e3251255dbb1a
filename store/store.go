// Package store holds the data access layer: one interface per
// collection, each backed by MongoDB. Handlers depend on the interfaces
// only, so tests run against in-memory stubs.
package store

import "errors"

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("document already exists")
)
