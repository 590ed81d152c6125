package organization

import "time"

// Organization is a tenant: a nutrition practice, gym, or company
// whose staff build menus for their clients.
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	LogoURL   string    `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
