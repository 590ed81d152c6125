package organization

import "errors"

type InMemoryRepository struct {
	orgs map[string]*Organization
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orgs: make(map[string]*Organization)}
}

func (r *InMemoryRepository) Create(org *Organization) error {
	r.orgs[org.ID] = org
	return nil
}

func (r *InMemoryRepository) FindByID(id string) (*Organization, error) {
	org, ok := r.orgs[id]
	if !ok {
		return nil, errors.New("organization not found")
	}
	return org, nil
}

func (r *InMemoryRepository) ListByOwner(ownerID string) ([]*Organization, error) {
	var orgs []*Organization
	for _, org := range r.orgs {
		if org.OwnerID == ownerID {
			orgs = append(orgs, org)
		}
	}
	return orgs, nil
}

func (r *InMemoryRepository) IsOwner(orgID, userID string) (bool, error) {
	org, ok := r.orgs[orgID]
	return ok && org.OwnerID == userID, nil
}

func (r *InMemoryRepository) SetLogoURL(orgID, url string) error {
	org, ok := r.orgs[orgID]
	if !ok {
		return errors.New("organization not found")
	}
	org.LogoURL = url
	return nil
}
