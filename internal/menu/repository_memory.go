package menu

import (
	"errors"
	"time"
)

type InMemoryRepository struct {
	menus map[string]*Menu
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{menus: make(map[string]*Menu)}
}

func (r *InMemoryRepository) Create(m *Menu) error {
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	r.menus[m.ID] = m
	return nil
}

func (r *InMemoryRepository) FindByID(id string) (*Menu, error) {
	m, ok := r.menus[id]
	if !ok {
		return nil, errors.New("menu not found")
	}
	return m, nil
}

func (r *InMemoryRepository) ListByOwner(ownerID string) ([]*Menu, error) {
	var menus []*Menu
	for _, m := range r.menus {
		if m.OwnerID == ownerID {
			menus = append(menus, m)
		}
	}
	return menus, nil
}

func (r *InMemoryRepository) UpdateDocument(id string, doc *Document) error {
	m, ok := r.menus[id]
	if !ok {
		return errors.New("menu not found")
	}
	m.Document = doc
	m.UpdatedAt = time.Now()
	return nil
}
