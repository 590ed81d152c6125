package organization

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(org *Organization) error {
	return r.db.QueryRow(context.Background(), `
		INSERT INTO organizations (id, name, owner_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, org.ID, org.Name, org.OwnerID).Scan(&org.CreatedAt)
}

func (r *PostgresRepository) FindByID(id string) (*Organization, error) {
	var org Organization
	err := r.db.QueryRow(context.Background(), `
		SELECT id, name, owner_id, COALESCE(logo_url, ''), created_at
		FROM organizations
		WHERE id = $1
	`, id).Scan(&org.ID, &org.Name, &org.OwnerID, &org.LogoURL, &org.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("organization not found")
		}
		return nil, err
	}
	return &org, nil
}

func (r *PostgresRepository) ListByOwner(ownerID string) ([]*Organization, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, name, owner_id, COALESCE(logo_url, ''), created_at
		FROM organizations
		WHERE owner_id = $1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []*Organization
	for rows.Next() {
		var org Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.OwnerID, &org.LogoURL, &org.CreatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, &org)
	}
	return orgs, rows.Err()
}

func (r *PostgresRepository) IsOwner(orgID, userID string) (bool, error) {
	var isOwner bool
	err := r.db.QueryRow(context.Background(), `
		SELECT EXISTS (
			SELECT 1 FROM organizations
			WHERE id = $1 AND owner_id = $2
		)
	`, orgID, userID).Scan(&isOwner)
	return isOwner, err
}

func (r *PostgresRepository) SetLogoURL(orgID, url string) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE organizations
		SET logo_url = $1
		WHERE id = $2
	`, url, orgID)
	return err
}
