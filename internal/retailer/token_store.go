package retailer

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Token is a user's OAuth grant for one retailer.
type Token struct {
	UserID       string
	Retailer     string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// TokenStore persists per-user retailer OAuth tokens.
type TokenStore interface {
	Save(ctx context.Context, token *Token) error
	Get(ctx context.Context, userID, retailer string) (*Token, error)
}

var ErrNoToken = errors.New("no linked retailer account")

// --------------------------------------------------
// Postgres implementation
// --------------------------------------------------
type PostgresTokenStore struct {
	db *pgxpool.Pool
}

func NewPostgresTokenStore(db *pgxpool.Pool) *PostgresTokenStore {
	return &PostgresTokenStore{db: db}
}

func (s *PostgresTokenStore) Save(ctx context.Context, token *Token) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO retailer_tokens (user_id, retailer, access_token, refresh_token, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (user_id, retailer)
		DO UPDATE SET access_token = $3,
		              refresh_token = $4,
		              expires_at = $5,
		              updated_at = now()
	`, token.UserID, token.Retailer, token.AccessToken, token.RefreshToken, token.ExpiresAt)
	return err
}

func (s *PostgresTokenStore) Get(ctx context.Context, userID, retailer string) (*Token, error) {
	token := &Token{UserID: userID, Retailer: retailer}

	err := s.db.QueryRow(ctx, `
		SELECT access_token, COALESCE(refresh_token, ''), expires_at
		FROM retailer_tokens
		WHERE user_id = $1 AND retailer = $2
	`, userID, retailer).Scan(&token.AccessToken, &token.RefreshToken, &token.ExpiresAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoToken
		}
		return nil, err
	}
	return token, nil
}

// --------------------------------------------------
// In-memory implementation (tests)
// --------------------------------------------------
type InMemoryTokenStore struct {
	tokens map[string]*Token
}

func NewInMemoryTokenStore() *InMemoryTokenStore {
	return &InMemoryTokenStore{tokens: make(map[string]*Token)}
}

func (s *InMemoryTokenStore) Save(ctx context.Context, token *Token) error {
	s.tokens[token.UserID+"/"+token.Retailer] = token
	return nil
}

func (s *InMemoryTokenStore) Get(ctx context.Context, userID, retailer string) (*Token, error) {
	token, ok := s.tokens[userID+"/"+retailer]
	if !ok {
		return nil, ErrNoToken
	}
	return token, nil
}
