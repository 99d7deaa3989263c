package repository

// Package repository contains data access layer abstractions.
// Implementations can live in subpackages (e.g., sqlstore) inside this directory.

import "errors"

var (
	// ErrNotFound is returned when a row addressed by id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("record conflicts with an existing row")
	// ErrInvalidReference is returned when a write points at a row that does not exist
	// (foreign-key violation or an unsaved associated entity).
	ErrInvalidReference = errors.New("record references a missing row")
)
