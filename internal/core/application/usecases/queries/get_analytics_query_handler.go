package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// AnalyticsQueryHandler serves the admin dashboard from aggregate SQL.
type AnalyticsQueryHandler struct {
	db *gorm.DB
}

func NewAnalyticsQueryHandler(db *gorm.DB) AnalyticsQueryHandler {
	return AnalyticsQueryHandler{db: db}
}

func (h AnalyticsQueryHandler) Totals(ctx context.Context, query GetAnalyticsQuery) (Analytics, error) {
	if err := query.Validate(); err != nil {
		return Analytics{}, err
	}

	var totals Analytics
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM products),
			COUNT(*),
			COUNT(DISTINCT user_id),
			COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status <> ?
	`, order.Cancelled).Row()
	if err := row.Scan(
		&totals.TotalProducts,
		&totals.TotalOrders,
		&totals.TotalCustomers,
		&totals.TotalRevenue,
	); err != nil {
		return Analytics{}, err
	}

	return totals, nil
}

// Revenue returns one point per day that had orders, oldest first. Days without orders
// are omitted.
func (h AnalyticsQueryHandler) Revenue(ctx context.Context, query GetRevenueQuery) ([]DailyRevenue, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			(created_at AT TIME ZONE 'UTC')::date AS day,
			SUM(total_amount),
			COUNT(*)
		FROM orders
		WHERE status <> ? AND created_at >= ?
		GROUP BY day
		ORDER BY day
	`, order.Cancelled, query.Since()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]DailyRevenue, 0)
	for rows.Next() {
		var (
			point DailyRevenue
			day   time.Time
		)
		if err = rows.Scan(&day, &point.Revenue, &point.Orders); err != nil {
			return nil, err
		}
		point.Date = day.Format(time.DateOnly)
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}
