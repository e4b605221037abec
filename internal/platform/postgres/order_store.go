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

// PostgresOrderStore implements the store.OrderStore interface
// using a PostgreSQL database as the storage backend.
type PostgresOrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOrderStore creates a new PostgreSQL implementation of the
// OrderStore interface. If logger is nil, a default logger will be used.
func NewPostgresOrderStore(db store.DBTX, logger *slog.Logger) *PostgresOrderStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresOrderStore{
		db:     db,
		logger: logger.With(slog.String("component", "order_store")),
	}
}

// Ensure PostgresOrderStore implements store.OrderStore interface
var _ store.OrderStore = (*PostgresOrderStore)(nil)

// List implements store.OrderStore.List
func (s *PostgresOrderStore) List(ctx context.Context) ([]*domain.Order, error) {
	query := `
		SELECT id, number, total, user_id, created_at, updated_at
		FROM orders
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Error("failed to list orders", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var orders []*domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID,
			&order.Number,
			&order.Total,
			&order.UserID,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			s.logger.Error("failed to scan order row", slog.String("error", err.Error()))
			return nil, err
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}

// GetByID implements store.OrderStore.GetByID
// Returns store.ErrOrderNotFound if the order does not exist.
func (s *PostgresOrderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `
		SELECT id, number, total, user_id, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order domain.Order
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.Number,
		&order.Total,
		&order.UserID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("order not found", slog.String("order_id", id.String()))
			return nil, store.ErrOrderNotFound
		}
		s.logger.Error("failed to get order by ID",
			slog.String("error", err.Error()),
			slog.String("order_id", id.String()))
		return nil, err
	}

	return &order, nil
}

// Create implements store.OrderStore.Create
func (s *PostgresOrderStore) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (id, number, total, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		order.ID,
		order.Number,
		order.Total,
		order.UserID,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			s.logger.Warn("foreign key violation during order creation",
				slog.String("order_id", order.ID.String()),
				slog.String("user_id", order.UserID.String()))
		} else {
			s.logger.Error("failed to create order",
				slog.String("error", err.Error()),
				slog.String("order_id", order.ID.String()))
		}
		return err
	}

	s.logger.Info("order created successfully",
		slog.String("order_id", order.ID.String()),
		slog.String("user_id", order.UserID.String()))
	return nil
}

// Update implements store.OrderStore.Update
// Returns store.ErrOrderNotFound if the order does not exist.
func (s *PostgresOrderStore) Update(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET number = $1, total = $2, user_id = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		order.Number,
		order.Total,
		order.UserID,
		order.UpdatedAt,
		order.ID,
	)
	if err != nil {
		s.logger.Error("failed to update order",
			slog.String("error", err.Error()),
			slog.String("order_id", order.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		s.logger.Debug("order not found for update",
			slog.String("order_id", order.ID.String()))
		return store.ErrOrderNotFound
	}

	return nil
}

// Delete implements store.OrderStore.Delete
// Details belonging to the order are removed by the ON DELETE CASCADE
// constraint on order_details.order_id.
// Returns store.ErrOrderNotFound if the order does not exist.
func (s *PostgresOrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete order",
			slog.String("error", err.Error()),
			slog.String("order_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrOrderNotFound
	}

	s.logger.Info("order deleted", slog.String("order_id", id.String()))
	return nil
}
