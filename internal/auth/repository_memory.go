package auth

import "errors"

// InMemoryUserRepository backs the unit tests; no database required.
type InMemoryUserRepository struct {
	users map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) Save(user *User) error {
	r.users[user.Email] = user
	return nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *InMemoryUserRepository) FindByID(id string) (*User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *InMemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *InMemoryUserRepository) ListByOrg(orgID string) ([]*User, error) {
	var users []*User
	for _, user := range r.users {
		if user.OrgID == orgID {
			users = append(users, user)
		}
	}
	return users, nil
}
