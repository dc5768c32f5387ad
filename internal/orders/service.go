// Package orders is the producer-facing side of the order book: listing,
// status filtering and the forward-only status transition used by the
// dashboard's status control.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/feirafresca/storefront/internal/models"
)

var (
	ErrValidation        = errors.New("validation")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// statusRank encodes the lifecycle order: pending → preparing → shipped →
// delivered. A transition is legal only when it moves strictly forward,
// which also makes delivered terminal.
var statusRank = map[string]int{
	models.OrderStatusPending:   0,
	models.OrderStatusPreparing: 1,
	models.OrderStatusShipped:   2,
	models.OrderStatusDelivered: 3,
}

var statusLabels = map[string]string{
	models.OrderStatusPending:   "Pendente",
	models.OrderStatusPreparing: "Em Preparo",
	models.OrderStatusShipped:   "Enviado",
	models.OrderStatusDelivered: "Entregue",
}

// Label returns the pt-BR display label for a status, or the raw status
// when it is unknown.
func Label(status string) string {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return status
}

// FormatDateBR renders an ISO date (yyyy-mm-dd) day-first, the convention
// used across the dashboard.
func FormatDateBR(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

type Service struct {
	DB *gorm.DB
}

// ListByProducer returns the producer's orders, optionally narrowed to one
// status. "all" (or empty) disables the filter.
func (s *Service) ListByProducer(ctx context.Context, producerID, status string) ([]models.Order, error) {
	q := s.DB.WithContext(ctx).Preload("Items").Where("producer_id = ?", producerID)
	if status != "" && status != "all" {
		if _, ok := statusRank[status]; !ok {
			return nil, fmt.Errorf("unknown status %q: %w", status, ErrValidation)
		}
		q = q.Where("status = ?", status)
	}

	var items []models.Order
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus moves an order forward in its lifecycle. Backward moves and
// repeats are rejected, and nothing can leave delivered.
func (s *Service) UpdateStatus(ctx context.Context, orderID, next string) (*models.Order, error) {
	nextRank, ok := statusRank[next]
	if !ok {
		return nil, fmt.Errorf("unknown status %q: %w", next, ErrValidation)
	}

	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if nextRank <= statusRank[order.Status] {
		return nil, fmt.Errorf("%s -> %s: %w", order.Status, next, ErrInvalidTransition)
	}

	order.Status = next
	if err := s.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", next).Error; err != nil {
		return nil, err
	}
	return order, nil
}

type SalesPoint struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

// salesSeries is the fixed 7-day series behind the dashboard chart. The
// original ships it as mock data; there is no per-day aggregation to run.
var salesSeries = []SalesPoint{
	{Day: "18/10", Value: 120},
	{Day: "19/10", Value: 180},
	{Day: "20/10", Value: 150},
	{Day: "21/10", Value: 220},
	{Day: "22/10", Value: 280},
	{Day: "23/10", Value: 240},
	{Day: "24/10", Value: 310},
}

type Dashboard struct {
	MonthlyRevenue decimal.Decimal
	PendingOrders  int
	ProductCount   int
	TopProduct     *models.Product
	Sales          []SalesPoint
}

// DashboardFor aggregates the producer's KPIs: revenue over all orders,
// pending order count, product count and the top (featured-first) product.
func (s *Service) DashboardFor(ctx context.Context, producerID string) (*Dashboard, error) {
	orders, err := s.ListByProducer(ctx, producerID, "")
	if err != nil {
		return nil, err
	}

	d := &Dashboard{MonthlyRevenue: decimal.Zero, Sales: salesSeries}
	for _, o := range orders {
		d.MonthlyRevenue = d.MonthlyRevenue.Add(decimal.NewFromFloat(o.Total))
		if o.Status == models.OrderStatusPending {
			d.PendingOrders++
		}
	}

	var products []models.Product
	if err := s.DB.WithContext(ctx).
		Where("producer_id = ?", producerID).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	d.ProductCount = len(products)

	if len(products) > 0 {
		top := products[0]
		for _, p := range products {
			if p.Featured {
				top = p
			}
		}
		d.TopProduct = &top
	}
	return d, nil
}
