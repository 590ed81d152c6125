package auth

// User is the domain entity. Role is one of ADMIN, ORGANIZATION,
// CLIENT; OrgID ties ORGANIZATION and CLIENT accounts to their tenant.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
	OrgID    string
}

const (
	RoleAdmin        = "ADMIN"
	RoleOrganization = "ORGANIZATION"
	RoleClient       = "CLIENT"
)
