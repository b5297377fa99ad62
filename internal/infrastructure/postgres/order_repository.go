package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/quikfix/spares-api/internal/domain"
	"github.com/quikfix/spares-api/internal/domain/entity"
	"github.com/quikfix/spares-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo OrderRepository over PostgreSQL (usable with pool or tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the adapter. Pass a pool or tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserts the order and its item snapshots. A lost race on the
// order_number unique constraint surfaces as domain.ErrDuplicate so the
// caller can retry with a fresh number.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders
			(id, order_number, customer_name, customer_mobile, total, status,
			 cancelled_by, tracking_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.CustomerName, order.CustomerMobile,
		order.Total, order.Status, nullable(order.CancelledBy),
		nullable(order.TrackingLink), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, name, price, quantity, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, item := range order.Items {
		_, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, order.ID, item.ProductID, item.Name, item.Price, item.Quantity,
			nullable(item.Image),
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID returns the order with its items, or nil when absent.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, order_number, customer_name, customer_mobile, total, status,
		       cancelled_by, tracking_link, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	var cancelledBy, trackingLink *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerMobile, &o.Total,
		&o.Status, &cancelledBy, &trackingLink, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.CancelledBy = deref(cancelledBy)
	o.TrackingLink = deref(trackingLink)

	items, err := r.itemsFor([]string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// List returns orders newest first. Empty mobile lists every order.
func (r *OrderRepo) List(mobile string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, order_number, customer_name, customer_mobile, total, status,
		       cancelled_by, tracking_link, created_at, updated_at
		FROM orders`
	args := []any{}
	pos := 1
	if mobile != "" {
		query += fmt.Sprintf(" WHERE customer_mobile = $%d", pos)
		args = append(args, mobile)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		var cancelledBy, trackingLink *string
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerMobile, &o.Total,
			&o.Status, &cancelledBy, &trackingLink, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.CancelledBy = deref(cancelledBy)
		o.TrackingLink = deref(trackingLink)
		orders = append(orders, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.itemsFor(ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Items = items[o.ID]
	}
	return orders, nil
}

// Update applies only the provided fields. With ExpectedStatus set the
// UPDATE carries a status guard, so a racing update that already moved the
// order leaves zero rows affected instead of overwriting it.
func (r *OrderRepo) Update(id string, upd repository.OrderUpdate) error {
	query := "UPDATE orders SET updated_at = now()"
	args := []any{id}
	pos := 2
	if upd.Status != nil {
		query += fmt.Sprintf(", status = $%d", pos)
		args = append(args, *upd.Status)
		pos++
	}
	if upd.TrackingLink != nil {
		query += fmt.Sprintf(", tracking_link = $%d", pos)
		args = append(args, *upd.TrackingLink)
		pos++
	}
	if upd.CancelledBy != nil {
		query += fmt.Sprintf(", cancelled_by = $%d", pos)
		args = append(args, *upd.CancelledBy)
		pos++
	}
	query += " WHERE id = $1"
	if upd.ExpectedStatus != nil {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, *upd.ExpectedStatus)
		pos++
	}

	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// itemsFor loads item snapshots for a set of orders in one query.
func (r *OrderRepo) itemsFor(orderIDs []string) (map[string][]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, name, price, quantity, image
		FROM order_items WHERE order_id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]entity.OrderItem, len(orderIDs))
	for rows.Next() {
		var it entity.OrderItem
		var image *string
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Price, &it.Quantity, &image); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		it.Image = deref(image)
		items[it.OrderID] = append(items[it.OrderID], it)
	}
	return items, rows.Err()
}
