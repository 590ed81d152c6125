package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(user *User) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO users (id, name, email, password, role, org_id)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
	`, user.ID, user.Name, user.Email, user.Password, user.Role, user.OrgID)
	return err
}

func (r *PostgresUserRepository) FindByEmail(email string) (*User, error) {
	return r.scanOne(`
		SELECT id, name, email, password, role, COALESCE(org_id::text, '')
		FROM users
		WHERE email = $1
	`, email)
}

func (r *PostgresUserRepository) FindByID(id string) (*User, error) {
	return r.scanOne(`
		SELECT id, name, email, password, role, COALESCE(org_id::text, '')
		FROM users
		WHERE id = $1
	`, id)
}

func (r *PostgresUserRepository) scanOne(query, arg string) (*User, error) {
	var user User
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.OrgID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) ExistsByEmail(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(), `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

func (r *PostgresUserRepository) ListByOrg(orgID string) ([]*User, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, name, email, password, role, COALESCE(org_id::text, '')
		FROM users
		WHERE org_id = $1
		ORDER BY created_at
	`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		var user User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Password,
			&user.Role,
			&user.OrgID,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}
