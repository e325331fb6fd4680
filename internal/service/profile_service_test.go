package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fitflow/fitness-app/internal/domain"
	"fitflow/fitness-app/internal/repository/memory"
)

// recordingStorage satisfies storage.FileStorage and records deletions.
type recordingStorage struct {
	deleted []string
}

func (r *recordingStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://bucket.test/" + objectKey + "?sig=abc", nil
}

func (r *recordingStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://bucket.test/" + objectKey, nil
}

func (r *recordingStorage) DeleteObject(_ context.Context, objectKey string) error {
	r.deleted = append(r.deleted, objectKey)
	return nil
}

func TestReplacingProfilePhotoDeletesOldObject(t *testing.T) {
	t.Parallel()
	store := memory.NewStore()
	files := &recordingStorage{}
	svc := NewProfileService(store, files)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, &domain.User{Username: "ana", Email: "ana@example.com", PasswordHash: "x"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	firstKey := "avatars/" + user.ID + "/first.png"
	if _, err := svc.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{ProfileImageURL: &firstKey}); err != nil {
		t.Fatalf("set first photo: %v", err)
	}
	if len(files.deleted) != 0 {
		t.Fatalf("first photo should not trigger a deletion, got %v", files.deleted)
	}

	// Re-sending the same key is not a replacement.
	if _, err := svc.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{ProfileImageURL: &firstKey}); err != nil {
		t.Fatalf("resend same photo key: %v", err)
	}
	if len(files.deleted) != 0 {
		t.Fatalf("unchanged photo key should not trigger a deletion, got %v", files.deleted)
	}

	secondKey := "avatars/" + user.ID + "/second.png"
	if _, err := svc.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{ProfileImageURL: &secondKey}); err != nil {
		t.Fatalf("replace photo: %v", err)
	}
	if len(files.deleted) != 1 || files.deleted[0] != firstKey {
		t.Fatalf("expected replaced object %q deleted, got %v", firstKey, files.deleted)
	}
}

func TestAvatarDownloadURL(t *testing.T) {
	t.Parallel()
	store := memory.NewStore()
	svc := NewProfileService(store, &recordingStorage{})
	ctx := context.Background()

	user, err := store.CreateUser(ctx, &domain.User{Username: "bo", Email: "bo@example.com", PasswordHash: "x"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := svc.AvatarDownloadURL(ctx, user.ID); !errors.Is(err, ErrNoProfileImage) {
		t.Fatalf("expected ErrNoProfileImage without a photo, got %v", err)
	}
	if _, err := svc.AvatarDownloadURL(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for unknown user, got %v", err)
	}

	key := "avatars/" + user.ID + "/photo.jpg"
	if _, err := svc.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{ProfileImageURL: &key}); err != nil {
		t.Fatalf("set photo: %v", err)
	}

	url, err := svc.AvatarDownloadURL(ctx, user.ID)
	if err != nil {
		t.Fatalf("download url: %v", err)
	}
	if !strings.Contains(url, key) {
		t.Fatalf("download URL %q does not reference object %q", url, key)
	}
}
