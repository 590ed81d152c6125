package menu

// Repository defines the data-access contract for stored menus.
type Repository interface {
	Create(m *Menu) error
	FindByID(id string) (*Menu, error)
	ListByOwner(ownerID string) ([]*Menu, error)
	UpdateDocument(id string, doc *Document) error
}
