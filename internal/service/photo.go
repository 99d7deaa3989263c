package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"petclinic/internal/repository"
	"petclinic/internal/storage"
)

// PhotoURLExpiry is how long a pre-signed photo URL stays valid.
const PhotoURLExpiry = 15 * time.Minute

// PhotoService stores one photo per pet in object storage.
type PhotoService interface {
	// Upload stores the image as the pet's photo, replacing any previous one.
	Upload(ctx context.Context, ownerID, petID int, r io.Reader, contentType string, size int64) (*storage.ObjectInfo, error)
	// URL returns a pre-signed download URL for the pet's photo.
	URL(ctx context.Context, ownerID, petID int) (string, error)
	// Delete removes the pet's photo.
	Delete(ctx context.Context, ownerID, petID int) error
}

type photoService struct {
	store storage.Storage
	pets  repository.PetRepository
}

// NewPhotoService constructs a new PhotoService. A nil store makes every call fail with ErrStorageDisabled.
func NewPhotoService(store storage.Storage, pets repository.PetRepository) PhotoService {
	return &photoService{store: store, pets: pets}
}

// PhotoKey is the object key of a pet's photo.
func PhotoKey(petID int) string {
	return "pets/" + strconv.Itoa(petID) + "/photo"
}

func (s *photoService) Upload(ctx context.Context, ownerID, petID int, r io.Reader, contentType string, size int64) (*storage.ObjectInfo, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, &ValidationError{Fields: []FieldError{{Field: "file", Message: "must be an image"}}}
	}
	if err := s.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	info, err := s.store.Put(ctx, PhotoKey(petID), r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"owner-id": strconv.Itoa(ownerID),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	return &info, nil
}

func (s *photoService) URL(ctx context.Context, ownerID, petID int) (string, error) {
	if s.store == nil {
		return "", ErrStorageDisabled
	}
	if err := s.ownedPet(ctx, ownerID, petID); err != nil {
		return "", err
	}

	key := PhotoKey(petID)
	if _, err := s.store.Stat(ctx, key); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat photo: %w", err)
	}
	u, err := s.store.PresignGet(ctx, key, PhotoURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign photo: %w", err)
	}
	return u, nil
}

func (s *photoService) Delete(ctx context.Context, ownerID, petID int) error {
	if s.store == nil {
		return ErrStorageDisabled
	}
	if err := s.ownedPet(ctx, ownerID, petID); err != nil {
		return err
	}

	key := PhotoKey(petID)
	if _, err := s.store.Stat(ctx, key); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("stat photo: %w", err)
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete from storage: %w", err)
	}
	return nil
}

func (s *photoService) ownedPet(ctx context.Context, ownerID, petID int) error {
	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return mapRepoErr(err)
	}
	if pet.OwnerID != ownerID {
		return ErrNotFound
	}
	return nil
}
