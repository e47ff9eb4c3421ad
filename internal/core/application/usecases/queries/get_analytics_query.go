package queries

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetAnalyticsQueryIsNotConstructed = errors.New("GetAnalyticsQuery must be created via NewGetAnalyticsQuery constructor")
	ErrGetRevenueQueryIsNotConstructed   = errors.New("GetRevenueQuery must be created via NewGetRevenueQuery constructor")
)

// GetAnalyticsQuery computes store totals. Cancelled orders are left out and revenue is
// summed from the current total of each order, so approved returns are already netted.
type GetAnalyticsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAnalyticsQuery() GetAnalyticsQuery {
	return GetAnalyticsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetAnalyticsQueryIsNotConstructed)
}

// Analytics holds the store totals. TotalCustomers counts distinct buyers with at least
// one non-cancelled order.
type Analytics struct {
	TotalProducts  int   `json:"totalProducts"`
	TotalOrders    int   `json:"totalOrders"`
	TotalCustomers int   `json:"totalCustomers"`
	TotalRevenue   int64 `json:"totalRevenue"`
}

// RevenuePeriod is the look-back window of a revenue chart.
type RevenuePeriod string

const (
	Week  RevenuePeriod = "week"
	Month RevenuePeriod = "month"
	Year  RevenuePeriod = "year"
)

// ParseRevenuePeriod accepts week, month and year. An empty period means month.
func ParseRevenuePeriod(s string) (RevenuePeriod, error) {
	switch p := RevenuePeriod(s); p {
	case "":
		return Month, nil
	case Week, Month, Year:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("%q is not one of week, month, year", s))
	}
}

// Days is the length of the window.
func (p RevenuePeriod) Days() int {
	switch p {
	case Week:
		return 7
	case Year:
		return 365
	default:
		return 30
	}
}

// GetRevenueQuery groups non-cancelled revenue per UTC day over the period ending at now.
type GetRevenueQuery struct {
	period RevenuePeriod
	since  time.Time

	guard guard.ConstructorGuard
}

func NewGetRevenueQuery(period string, now time.Time) (GetRevenueQuery, error) {
	p, err := ParseRevenuePeriod(period)
	if err != nil {
		return GetRevenueQuery{}, err
	}
	return GetRevenueQuery{
		period: p,
		since:  now.Add(-time.Duration(p.Days()) * 24 * time.Hour),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueQueryIsNotConstructed)
}

func (q GetRevenueQuery) Period() RevenuePeriod { return q.period }
func (q GetRevenueQuery) Since() time.Time      { return q.since }

// DailyRevenue is one point of the revenue chart. Date is formatted as YYYY-MM-DD.
type DailyRevenue struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
	Orders  int    `json:"orders"`
}
