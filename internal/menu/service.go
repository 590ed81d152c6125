package menu

import (
	"errors"

	"github.com/google/uuid"
)

var ErrUnauthorized = errors.New("unauthorized")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create menu
// --------------------------------------------------
func (s *Service) Create(title, ownerID, orgID string, doc *Document) (*Menu, error) {
	if title == "" || ownerID == "" {
		return nil, errors.New("missing required fields")
	}
	if doc == nil {
		doc = &Document{}
	}

	m := &Menu{
		ID:       uuid.New().String(),
		OwnerID:  ownerID,
		OrgID:    orgID,
		Title:    title,
		Document: doc,
	}

	if err := s.repo.Create(m); err != nil {
		return nil, err
	}

	return m, nil
}

// --------------------------------------------------
// Fetch menu (tenant access enforced here)
// --------------------------------------------------
// The owner always has access; anyone else needs to share the menu's
// organization.
func (s *Service) Get(id, userID, userOrgID string) (*Menu, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if m.OwnerID != userID && (m.OrgID == "" || m.OrgID != userOrgID) {
		return nil, ErrUnauthorized
	}

	return m, nil
}

// --------------------------------------------------
// List menus owned by user
// --------------------------------------------------
func (s *Service) ListMine(ownerID string) ([]*Menu, error) {
	return s.repo.ListByOwner(ownerID)
}

// --------------------------------------------------
// Replace menu document
// --------------------------------------------------
func (s *Service) UpdateDocument(id, userID string, doc *Document) error {
	m, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if m.OwnerID != userID {
		return ErrUnauthorized
	}

	return s.repo.UpdateDocument(id, doc)
}
