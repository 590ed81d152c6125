package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'ORGANIZATION',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORGANIZATIONS
	// -------------------------------
	orgTableSQL := `
		CREATE TABLE IF NOT EXISTS organizations (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			owner_id UUID NOT NULL REFERENCES users(id),
			logo_url VARCHAR(500) NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, orgTableSQL); err != nil {
		return err
	}

	// users gained tenancy after organizations existed
	addOrgColumnSQL := `
		ALTER TABLE users
		ADD COLUMN IF NOT EXISTS org_id UUID NULL REFERENCES organizations(id)
	`
	if _, err := db.Exec(ctx, addOrgColumnSQL); err != nil {
		log.Println("Note: org_id column may already exist")
	}

	// -------------------------------
	// MENUS (document stored as JSONB)
	// -------------------------------
	menuTableSQL := `
		CREATE TABLE IF NOT EXISTS menus (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			org_id UUID NULL REFERENCES organizations(id),
			title VARCHAR(255) NOT NULL,
			document JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// RETAILER TOKENS
	// -------------------------------
	tokenTableSQL := `
		CREATE TABLE IF NOT EXISTS retailer_tokens (
			user_id UUID NOT NULL REFERENCES users(id),
			retailer VARCHAR(50) NOT NULL,
			access_token TEXT NOT NULL,
			refresh_token TEXT NULL,
			expires_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, retailer)
		)
	`
	if _, err := db.Exec(ctx, tokenTableSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
