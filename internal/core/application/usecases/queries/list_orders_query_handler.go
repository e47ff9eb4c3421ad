package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const listOrdersSQL = `
	SELECT
		o.id,
		o.user_id,
		o.status,
		o.total_amount,
		o.payment_method,
		(SELECT COALESCE(SUM(i.quantity), 0) FROM order_items i WHERE i.order_id = o.id) AS item_count,
		o.created_at,
		o.updated_at
	FROM orders o`

// ListOrdersQueryHandler reads order summaries straight from the orders table.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the summaries ordered by creation time, newest first. The item count
// is the number of units, not of lines.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := listOrdersSQL
	var args []any
	if owner := query.Owner(); owner != nil {
		sql += "\n\tWHERE o.user_id = ?"
		args = append(args, owner.Bytes())
	}
	sql += "\n\tORDER BY o.created_at DESC, o.id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			summary    OrderSummary
			id, userID uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&userID,
			&summary.Status,
			&summary.TotalAmount,
			&summary.PaymentMethod,
			&summary.ItemCount,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID.String()
		summary.OrderNumber = orderID.ShortCode()
		summary.UserID = userID.String()
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
