// Package service holds the clinic use cases on top of the repositories.
package service

import (
	"errors"

	"petclinic/internal/repository"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicatePetName = errors.New("owner already has a pet with this name")
	ErrConflict         = errors.New("conflicts with existing data")
	ErrReaderNil        = errors.New("reader is nil")
	ErrStorageDisabled  = errors.New("photo storage is not configured")
)

// mapRepoErr converts repository sentinels into service errors.
// Errors it does not know are returned unchanged.
func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrConflict):
		return ErrConflict
	default:
		return err
	}
}
