package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/gokulnath/order-service/internal/orders"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// OrderSource is anything that can produce the full order set.
type OrderSource interface {
	ScanAll(ctx context.Context) ([]orders.Order, error)
}

// Summary holds the headline counters.
type Summary struct {
	TotalOrders   int `json:"totalOrders"`
	TotalProducts int `json:"totalProducts"`
	OrdersToday   int `json:"ordersToday"`
}

// DailyOrders is one histogram bucket, labelled with the weekday abbreviation.
type DailyOrders struct {
	Date   string `json:"date"`
	Orders int    `json:"orders"`
}

// ProductSales aggregates quantity and revenue for one product ID.
type ProductSales struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// Service computes read-only aggregates by scanning the full order set on
// every call. There is no cached or incremental state.
type Service struct {
	source  OrderSource
	loc     *time.Location
	log     *zap.SugaredLogger
	nowFunc func() time.Time
}

// NewService builds a Service fixed to one timezone for all calendar math.
func NewService(source OrderSource, loc *time.Location, log *zap.SugaredLogger) *Service {
	return &Service{
		source:  source,
		loc:     loc,
		log:     log,
		nowFunc: time.Now,
	}
}

// orderDay extracts the calendar date from a stored order timestamp: the
// first 10 characters interpreted as yyyy-mm-dd.
func orderDay(orderDate string) (time.Time, error) {
	if len(orderDate) < len(dateLayout) {
		return time.Time{}, fmt.Errorf("order date too short: %q", orderDate)
	}
	return time.Parse(dateLayout, orderDate[:len(dateLayout)])
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Summarize counts all orders, distinct product IDs across all line items,
// and orders placed today. Orders with malformed dates still count toward the
// total; they are only excluded from the today counter.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	all, err := s.source.ScanAll(ctx)
	if err != nil {
		return nil, err
	}

	today := s.nowFunc().In(s.loc)
	uniqueProducts := map[string]struct{}{}
	sum := &Summary{}

	for _, o := range all {
		sum.TotalOrders++

		if o.OrderDate != "" {
			day, err := orderDay(o.OrderDate)
			if err != nil {
				s.log.Warnw("skipping malformed order date", "order_id", o.OrderID, "order_date", o.OrderDate)
			} else if sameDay(day, today) {
				sum.OrdersToday++
			}
		}

		for _, it := range o.Items {
			uniqueProducts[it.ProductID] = struct{}{}
		}
	}

	sum.TotalProducts = len(uniqueProducts)
	return sum, nil
}

// DailyHistogram buckets orders into a 7-day trailing window ending today,
// returned oldest to newest. Orders outside the window or with malformed
// dates are ignored.
func (s *Service) DailyHistogram(ctx context.Context) ([]DailyOrders, error) {
	all, err := s.source.ScanAll(ctx)
	if err != nil {
		return nil, err
	}

	today := s.nowFunc().In(s.loc)
	counts := map[string]int{}
	for i := 6; i >= 0; i-- {
		counts[today.AddDate(0, 0, -i).Format(dateLayout)] = 0
	}

	for _, o := range all {
		if o.OrderDate == "" {
			continue
		}
		day, err := orderDay(o.OrderDate)
		if err != nil {
			s.log.Warnw("skipping malformed order date", "order_id", o.OrderID, "order_date", o.OrderDate)
			continue
		}
		key := day.Format(dateLayout)
		if _, inWindow := counts[key]; inWindow {
			counts[key]++
		}
	}

	result := make([]DailyOrders, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		result = append(result, DailyOrders{
			Date:   day.Format("Mon"),
			Orders: counts[day.Format(dateLayout)],
		})
	}
	return result, nil
}

// SalesByProduct groups line items across all orders by product ID, summing
// quantity and quantity×unit-price. Groups come back in first-encounter order.
func (s *Service) SalesByProduct(ctx context.Context) ([]ProductSales, error) {
	all, err := s.source.ScanAll(ctx)
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	var result []ProductSales

	for _, o := range all {
		for _, it := range o.Items {
			i, ok := index[it.ProductID]
			if !ok {
				i = len(result)
				index[it.ProductID] = i
				result = append(result, ProductSales{ProductID: it.ProductID})
			}
			result[i].Quantity += it.Quantity
			result[i].Revenue += float64(it.Quantity) * it.UnitPrice
		}
	}

	if result == nil {
		result = []ProductSales{}
	}
	return result, nil
}
