package organization

// Repository defines the data-access contract.
type Repository interface {
	Create(org *Organization) error
	FindByID(id string) (*Organization, error)
	ListByOwner(ownerID string) ([]*Organization, error)
	IsOwner(orgID, userID string) (bool, error)
	SetLogoURL(orgID, url string) error
}
