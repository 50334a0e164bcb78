// Package repository defines the data access layer. The sentinel values
// below are shared across repositories so that higher layers such as
// services and handlers can distinguish failure scenarios: ErrNotFound
// maps to a rendered 404, while ErrForeignKey and ErrDuplicateShow map
// to flashed form errors.
package repository

import "errors"

// ErrNotFound is returned when an id does not resolve to a record.
var ErrNotFound = errors.New("record not found")

// ErrForeignKey is returned when a show references a venue or artist
// that does not exist.
var ErrForeignKey = errors.New("referenced record does not exist")

// ErrDuplicateShow is returned when a show with the identical
// (artist_id, venue_id, start_time) triple already exists.
var ErrDuplicateShow = errors.New("show already exists at this time")
