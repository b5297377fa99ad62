package postgres

import (
	"context"
	"fmt"

	"github.com/quikfix/spares-api/internal/domain/entity"
	"github.com/quikfix/spares-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo append-only ledger over PostgreSQL (usable with
// pool or tx). No update or delete statements exist here on purpose.
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository builds the adapter. Pass a pool or tx (Querier).
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

// Create persists one ledger entry.
func (r *InventoryTransactionRepo) Create(txn *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions
			(id, type, quantity, product_id, location_id, supplier_id, order_id, performed_by, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.Type, txn.Quantity, txn.ProductID, txn.LocationID,
		nullable(txn.SupplierID), nullable(txn.OrderID), txn.PerformedBy,
		nullable(txn.Notes), txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory transaction: %w", err)
	}
	return nil
}

// List returns entries newest first with product/location/supplier names and
// the order number joined in for the admin log.
func (r *InventoryTransactionRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*entity.InventoryTransaction, error) {
	query := `
		SELECT t.id, t.type, t.quantity, t.product_id, t.location_id,
		       t.supplier_id, t.order_id, t.performed_by, t.notes, t.created_at,
		       p.name, l.name, s.name, o.order_number
		FROM inventory_transactions t
		JOIN products p ON p.id = t.product_id
		JOIN locations l ON l.id = t.location_id
		LEFT JOIN suppliers s ON s.id = t.supplier_id
		LEFT JOIN orders o ON o.id = t.order_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Type != "" {
		query += fmt.Sprintf(" AND t.type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND t.product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		var supplierID, orderID, notes, supplierName, orderNumber *string
		if err := rows.Scan(
			&t.ID, &t.Type, &t.Quantity, &t.ProductID, &t.LocationID,
			&supplierID, &orderID, &t.PerformedBy, &notes, &t.CreatedAt,
			&t.ProductName, &t.LocationName, &supplierName, &orderNumber,
		); err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		t.SupplierID = deref(supplierID)
		t.OrderID = deref(orderID)
		t.Notes = deref(notes)
		t.SupplierName = deref(supplierName)
		t.OrderNumber = deref(orderNumber)
		list = append(list, &t)
	}
	return list, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
