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

// PostgresOrderDetailStore implements the store.OrderDetailStore interface
// using a PostgreSQL database as the storage backend. Every query is scoped
// by the parent order ID so a detail can never be read or mutated through
// another order.
type PostgresOrderDetailStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOrderDetailStore creates a new PostgreSQL implementation of the
// OrderDetailStore interface. If logger is nil, a default logger will be used.
func NewPostgresOrderDetailStore(db store.DBTX, logger *slog.Logger) *PostgresOrderDetailStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresOrderDetailStore{
		db:     db,
		logger: logger.With(slog.String("component", "order_detail_store")),
	}
}

// Ensure PostgresOrderDetailStore implements store.OrderDetailStore interface
var _ store.OrderDetailStore = (*PostgresOrderDetailStore)(nil)

// ListByOrder implements store.OrderDetailStore.ListByOrder
func (s *PostgresOrderDetailStore) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.OrderDetail, error) {
	query := `
		SELECT id, unit_price, quantity, sub_total, order_id, book_id, created_at, updated_at
		FROM order_details
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		s.logger.Error("failed to list order details",
			slog.String("error", err.Error()),
			slog.String("order_id", orderID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var details []*domain.OrderDetail
	for rows.Next() {
		var detail domain.OrderDetail
		err := rows.Scan(
			&detail.ID,
			&detail.UnitPrice,
			&detail.Quantity,
			&detail.SubTotal,
			&detail.OrderID,
			&detail.BookID,
			&detail.CreatedAt,
			&detail.UpdatedAt,
		)
		if err != nil {
			s.logger.Error("failed to scan order detail row", slog.String("error", err.Error()))
			return nil, err
		}
		details = append(details, &detail)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if details == nil {
		details = []*domain.OrderDetail{}
	}
	return details, nil
}

// GetByID implements store.OrderDetailStore.GetByID
// Returns store.ErrOrderDetailNotFound if no such detail exists under the order.
func (s *PostgresOrderDetailStore) GetByID(ctx context.Context, orderID, detailID uuid.UUID) (*domain.OrderDetail, error) {
	query := `
		SELECT id, unit_price, quantity, sub_total, order_id, book_id, created_at, updated_at
		FROM order_details
		WHERE id = $1 AND order_id = $2
	`

	var detail domain.OrderDetail
	err := s.db.QueryRowContext(ctx, query, detailID, orderID).Scan(
		&detail.ID,
		&detail.UnitPrice,
		&detail.Quantity,
		&detail.SubTotal,
		&detail.OrderID,
		&detail.BookID,
		&detail.CreatedAt,
		&detail.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("order detail not found",
				slog.String("order_id", orderID.String()),
				slog.String("detail_id", detailID.String()))
			return nil, store.ErrOrderDetailNotFound
		}
		s.logger.Error("failed to get order detail by ID",
			slog.String("error", err.Error()),
			slog.String("order_id", orderID.String()),
			slog.String("detail_id", detailID.String()))
		return nil, err
	}

	return &detail, nil
}

// Create implements store.OrderDetailStore.Create
// The book reference is intentionally unconstrained: the detail is accepted
// even when book_id points at no existing book.
func (s *PostgresOrderDetailStore) Create(ctx context.Context, detail *domain.OrderDetail) error {
	query := `
		INSERT INTO order_details (id, unit_price, quantity, sub_total, order_id, book_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		detail.ID,
		detail.UnitPrice,
		detail.Quantity,
		detail.SubTotal,
		detail.OrderID,
		detail.BookID,
		detail.CreatedAt,
		detail.UpdatedAt,
	)
	if err != nil {
		s.logger.Error("failed to create order detail",
			slog.String("error", err.Error()),
			slog.String("detail_id", detail.ID.String()),
			slog.String("order_id", detail.OrderID.String()))
		return err
	}

	s.logger.Info("order detail created successfully",
		slog.String("detail_id", detail.ID.String()),
		slog.String("order_id", detail.OrderID.String()))
	return nil
}

// Update implements store.OrderDetailStore.Update
// Returns store.ErrOrderDetailNotFound if no such detail exists under the order.
func (s *PostgresOrderDetailStore) Update(ctx context.Context, detail *domain.OrderDetail) error {
	query := `
		UPDATE order_details
		SET unit_price = $1, quantity = $2, sub_total = $3, book_id = $4, updated_at = $5
		WHERE id = $6 AND order_id = $7
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		detail.UnitPrice,
		detail.Quantity,
		detail.SubTotal,
		detail.BookID,
		detail.UpdatedAt,
		detail.ID,
		detail.OrderID,
	)
	if err != nil {
		s.logger.Error("failed to update order detail",
			slog.String("error", err.Error()),
			slog.String("detail_id", detail.ID.String()),
			slog.String("order_id", detail.OrderID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		s.logger.Debug("order detail not found for update",
			slog.String("detail_id", detail.ID.String()),
			slog.String("order_id", detail.OrderID.String()))
		return store.ErrOrderDetailNotFound
	}

	return nil
}

// Delete implements store.OrderDetailStore.Delete
// Returns store.ErrOrderDetailNotFound if no such detail exists under the order.
func (s *PostgresOrderDetailStore) Delete(ctx context.Context, orderID, detailID uuid.UUID) error {
	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM order_details WHERE id = $1 AND order_id = $2`,
		detailID,
		orderID,
	)
	if err != nil {
		s.logger.Error("failed to delete order detail",
			slog.String("error", err.Error()),
			slog.String("order_id", orderID.String()),
			slog.String("detail_id", detailID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrOrderDetailNotFound
	}

	s.logger.Info("order detail deleted",
		slog.String("order_id", orderID.String()),
		slog.String("detail_id", detailID.String()))
	return nil
}
