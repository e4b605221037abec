package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/domain"
	"github.com/jhonfrank/bookstore-api/internal/store"
)

// PostgresTokenStore implements the store.TokenStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTokenStore creates a new PostgreSQL implementation of the
// TokenStore interface. If logger is nil, a default logger will be used.
func NewPostgresTokenStore(db store.DBTX, logger *slog.Logger) *PostgresTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTokenStore{
		db:     db,
		logger: logger.With(slog.String("component", "token_store")),
	}
}

// Ensure PostgresTokenStore implements store.TokenStore interface
var _ store.TokenStore = (*PostgresTokenStore)(nil)

// Create implements store.TokenStore.Create
func (s *PostgresTokenStore) Create(ctx context.Context, token *domain.Token) error {
	query := `
		INSERT INTO tokens (id, user_id, name, token_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		token.ID,
		token.UserID,
		token.Name,
		token.TokenHash,
		token.CreatedAt,
	)
	if err != nil {
		s.logger.Error("failed to create token record",
			slog.String("error", err.Error()),
			slog.String("user_id", token.UserID.String()))
		return err
	}

	s.logger.Info("token issued",
		slog.String("token_id", token.ID.String()),
		slog.String("user_id", token.UserID.String()))
	return nil
}

// CountByUser implements store.TokenStore.CountByUser
func (s *PostgresTokenStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM tokens WHERE user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		s.logger.Error("failed to count tokens",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, err
	}
	return count, nil
}

// FindUserByTokenHash implements store.TokenStore.FindUserByTokenHash
// Returns store.ErrTokenNotFound if no active record matches the hash.
func (s *PostgresTokenStore) FindUserByTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.hashed_password, u.created_at, u.updated_at
		FROM tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.token_hash = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, tokenHash).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("no token record for presented credential")
			return nil, store.ErrTokenNotFound
		}
		s.logger.Error("failed to resolve token", slog.String("error", err.Error()))
		return nil, err
	}

	return &user, nil
}

// DeleteByUser implements store.TokenStore.DeleteByUser
// Removing zero records is not an error; revocation is idempotent.
func (s *PostgresTokenStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tokens WHERE user_id = $1`, userID)
	if err != nil {
		s.logger.Error("failed to delete tokens",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	s.logger.Info("tokens revoked",
		slog.String("user_id", userID.String()),
		slog.Int64("count", rowsAffected))
	return int(rowsAffected), nil
}
