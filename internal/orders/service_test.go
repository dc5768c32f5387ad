package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feirafresca/storefront/internal/catalog"
	"github.com/feirafresca/storefront/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := catalog.Open(context.Background())
	require.NoError(t, err)
	return &Service{DB: store.DB()}
}

func TestListByProducer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	list, err := svc.ListByProducer(ctx, "1", "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "ORD-001", list[0].ID)
	require.Len(t, list[0].Items, 2)

	list, err = svc.ListByProducer(ctx, "2", "")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestListByProducerStatusFilter(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	list, err := svc.ListByProducer(ctx, "1", models.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "ORD-001", list[0].ID)

	list, err = svc.ListByProducer(ctx, "1", "all")
	require.NoError(t, err)
	require.Len(t, list, 3)

	_, err = svc.ListByProducer(ctx, "1", "archived")
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusForward(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	order, err := svc.UpdateStatus(ctx, "ORD-001", models.OrderStatusPreparing)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPreparing, order.Status)

	// Skipping ahead is still a forward move.
	order, err = svc.UpdateStatus(ctx, "ORD-001", models.OrderStatusDelivered)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusDelivered, order.Status)

	stored, err := svc.Get(ctx, "ORD-001")
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusDelivered, stored.Status)
}

func TestUpdateStatusRejectsBackward(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// ORD-003 is shipped.
	_, err := svc.UpdateStatus(ctx, "ORD-003", models.OrderStatusPending)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, "ORD-003", models.OrderStatusShipped)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusDeliveredIsTerminal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "ORD-003", models.OrderStatusDelivered)
	require.NoError(t, err)

	for _, next := range []string{
		models.OrderStatusPending,
		models.OrderStatusPreparing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		_, err = svc.UpdateStatus(ctx, "ORD-003", next)
		require.ErrorIs(t, err, ErrInvalidTransition)
	}
}

func TestUpdateStatusErrors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "ORD-001", "lost")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateStatus(ctx, "ORD-999", models.OrderStatusPreparing)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDashboardFor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	d, err := svc.DashboardFor(ctx, "1")
	require.NoError(t, err)

	// 39.30 + 13.80 + 28.80 across the three seeded orders.
	require.Equal(t, "81.90", d.MonthlyRevenue.StringFixed(2))
	require.Equal(t, 1, d.PendingOrders)
	require.Equal(t, 3, d.ProductCount)
	require.NotNil(t, d.TopProduct)
	// The last featured product wins: producer 1 has products 1, 2, 6 and
	// both 1 and 2 are featured.
	require.Equal(t, "2", d.TopProduct.ID)
	require.Len(t, d.Sales, 7)
}

func TestDashboardForEmptyProducer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	d, err := svc.DashboardFor(ctx, "3")
	require.NoError(t, err)
	require.True(t, d.MonthlyRevenue.IsZero())
	require.Equal(t, 0, d.PendingOrders)
	require.Equal(t, 1, d.ProductCount)
	require.Equal(t, "5", d.TopProduct.ID)
}

func TestLabel(t *testing.T) {
	require.Equal(t, "Pendente", Label(models.OrderStatusPending))
	require.Equal(t, "Em Preparo", Label(models.OrderStatusPreparing))
	require.Equal(t, "Enviado", Label(models.OrderStatusShipped))
	require.Equal(t, "Entregue", Label(models.OrderStatusDelivered))
	require.Equal(t, "weird", Label("weird"))
}

func TestFormatDateBR(t *testing.T) {
	require.Equal(t, "24/10/2025", FormatDateBR("2025-10-24"))
	require.Equal(t, "01/02/2025", FormatDateBR("2025-02-01"))
	require.Equal(t, "not-a-date", FormatDateBR("not-a-date"))
}
