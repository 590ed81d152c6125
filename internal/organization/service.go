package organization

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"mealplanner/internal/auth"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	users   auth.UserRepository
	storage Storage
}

func NewService(repo Repository, users auth.UserRepository, storage Storage) *Service {
	return &Service{repo: repo, users: users, storage: storage}
}

// --------------------------------------------------
// Create organization
// --------------------------------------------------
func (s *Service) Create(name, ownerID string) (*Organization, error) {
	if name == "" || ownerID == "" {
		return nil, errors.New("missing required fields")
	}

	org := &Organization{
		ID:      uuid.New().String(),
		Name:    name,
		OwnerID: ownerID,
	}

	if err := s.repo.Create(org); err != nil {
		return nil, err
	}

	return org, nil
}

// --------------------------------------------------
// List organizations owned by user
// --------------------------------------------------
func (s *Service) ListMine(ownerID string) ([]*Organization, error) {
	return s.repo.ListByOwner(ownerID)
}

// --------------------------------------------------
// List client accounts (ownership enforced here)
// --------------------------------------------------
func (s *Service) ListClients(orgID, userID string) ([]*auth.User, error) {
	isOwner, err := s.repo.IsOwner(orgID, userID)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, errors.New("unauthorized")
	}

	return s.users.ListByOrg(orgID)
}

// --------------------------------------------------
// Upload organization logo
// --------------------------------------------------
func (s *Service) UploadLogo(
	ctx context.Context,
	orgID string,
	userID string,
	file multipart.File,
	filename string,
) (string, error) {

	isOwner, err := s.repo.IsOwner(orgID, userID)
	if err != nil {
		return "", err
	}
	if !isOwner {
		return "", errors.New("unauthorized")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf("logos/%s/%s%s", orgID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetLogoURL(orgID, url); err != nil {
		return "", err
	}

	return url, nil
}
