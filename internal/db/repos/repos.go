// Package repos contains the database repositories, one per entity
package repos

import "errors"

// ErrStateConflict is returned when a conditional lifecycle update matched
// zero rows: another caller won the transition first. Callers re-read and
// re-validate to surface the precise failure.
var ErrStateConflict = errors.New("entity state changed concurrently")
