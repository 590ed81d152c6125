package menu

import (
	"context"
	"encoding/json"
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

// --------------------------------------------------
// CREATE MENU (document stored as JSONB)
// --------------------------------------------------
func (r *PostgresRepository) Create(m *Menu) error {
	doc, err := json.Marshal(m.Document)
	if err != nil {
		return err
	}

	return r.db.QueryRow(context.Background(), `
		INSERT INTO menus (id, owner_id, org_id, title, document, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, now(), now())
		RETURNING created_at, updated_at
	`, m.ID, m.OwnerID, m.OrgID, m.Title, doc).Scan(&m.CreatedAt, &m.UpdatedAt)
}

// --------------------------------------------------
// FIND BY ID
// --------------------------------------------------
func (r *PostgresRepository) FindByID(id string) (*Menu, error) {
	var (
		m   Menu
		doc []byte
	)

	err := r.db.QueryRow(context.Background(), `
		SELECT id, owner_id, COALESCE(org_id::text, ''), title, document, created_at, updated_at
		FROM menus
		WHERE id = $1
	`, id).Scan(&m.ID, &m.OwnerID, &m.OrgID, &m.Title, &doc, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("menu not found")
		}
		return nil, err
	}

	m.Document = &Document{}
	if err := json.Unmarshal(doc, m.Document); err != nil {
		return nil, errors.New("stored menu document is not valid JSON")
	}

	return &m, nil
}

// --------------------------------------------------
// LIST BY OWNER (documents omitted, list view only)
// --------------------------------------------------
func (r *PostgresRepository) ListByOwner(ownerID string) ([]*Menu, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, owner_id, COALESCE(org_id::text, ''), title, created_at, updated_at
		FROM menus
		WHERE owner_id = $1
		ORDER BY updated_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []*Menu
	for rows.Next() {
		var m Menu
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.OrgID, &m.Title, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		menus = append(menus, &m)
	}
	return menus, rows.Err()
}

// --------------------------------------------------
// UPDATE DOCUMENT
// --------------------------------------------------
func (r *PostgresRepository) UpdateDocument(id string, docStruct *Document) error {
	doc, err := json.Marshal(docStruct)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(context.Background(), `
		UPDATE menus
		SET document = $1,
		    updated_at = now()
		WHERE id = $2
	`, doc, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("menu not found")
	}
	return nil
}
