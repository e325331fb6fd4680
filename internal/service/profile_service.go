package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"fitflow/fitness-app/internal/domain"
	"fitflow/fitness-app/internal/repository"
	"fitflow/fitness-app/internal/storage"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidContentType = errors.New("invalid or missing image content type")
	ErrUploadURLError     = errors.New("failed to generate upload URL")
	ErrDownloadURLError   = errors.New("failed to generate download URL")
	ErrNoProfileImage     = errors.New("user has no profile image")
)

// AvatarUploadResponse carries the presigned URL the client PUTs the photo to
// and the object key it reports back in its profile update.
type AvatarUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// ProfileService owns reads and mutations of the caller's own account.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error)
	RequestAvatarUploadURL(ctx context.Context, userID, contentType string) (*AvatarUploadResponse, error)
	AvatarDownloadURL(ctx context.Context, userID string) (string, error)
}

type profileService struct {
	store       repository.Store
	fileStorage storage.FileStorage
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(store repository.Store, fileStorage storage.FileStorage) ProfileService {
	return &profileService{store: store, fileStorage: fileStorage}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	// Remember the outgoing photo key so the replaced object can be removed.
	var oldImageKey string
	if update.ProfileImageURL != nil {
		if current, err := s.store.GetUser(ctx, userID); err == nil {
			oldImageKey = current.ProfileImageURL
		}
	}

	user, err := s.store.UpdateUserProfile(ctx, userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if update.ProfileImageURL != nil && oldImageKey != "" && oldImageKey != *update.ProfileImageURL {
		if err := s.fileStorage.DeleteObject(ctx, oldImageKey); err != nil {
			// The profile already points at the new photo; the orphaned
			// object is not worth failing the request over.
			log.Printf("WARN: Failed to delete replaced profile photo %q: %v", oldImageKey, err)
		}
	}

	user.PasswordHash = ""
	return user, nil
}

// RequestAvatarUploadURL generates a presigned PUT URL for a profile photo.
// The client uploads directly to object storage and then PATCHes its profile
// with the resulting key.
func (s *profileService) RequestAvatarUploadURL(ctx context.Context, userID, contentType string) (*AvatarUploadResponse, error) {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, ErrInvalidContentType
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	fileExtension := ""
	if parts := strings.Split(contentType, "/"); len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("avatars", userID, fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &AvatarUploadResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

// AvatarDownloadURL generates a presigned GET URL for the user's current
// profile photo.
func (s *profileService) AvatarDownloadURL(ctx context.Context, userID string) (string, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	if user.ProfileImageURL == "" {
		return "", ErrNoProfileImage
	}

	downloadURL, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, user.ProfileImageURL, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrDownloadURLError
	}
	return downloadURL, nil
}
