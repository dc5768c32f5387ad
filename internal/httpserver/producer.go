package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/feirafresca/storefront/internal/catalog"
	"github.com/feirafresca/storefront/internal/models"
	"github.com/feirafresca/storefront/internal/orders"
	"github.com/feirafresca/storefront/internal/pricing"
	"github.com/feirafresca/storefront/pkg/logging"
)

type ProducerHTTP struct {
	Orders *orders.Service
	Store  *catalog.Store
}

func (h *ProducerHTTP) productsFor(c echo.Context, os []models.Order) (map[string]models.Product, error) {
	var ids []string
	for _, o := range os {
		for _, it := range o.Items {
			ids = append(ids, it.ProductID)
		}
	}
	return h.Store.ProductsByID(c.Request().Context(), ids)
}

func (h *ProducerHTTP) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "producer.dashboard")

	producer, err := h.Store.Producer(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "producer not found")
		}
		l.Error("dashboard_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	d, err := h.Orders.DashboardFor(ctx, producer.ID)
	if err != nil {
		l.Error("dashboard_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	resp := echo.Map{
		"producer":                  newProducerView(*producer),
		"monthly_revenue":           d.MonthlyRevenue.InexactFloat64(),
		"monthly_revenue_formatted": pricing.FormatBRL(d.MonthlyRevenue),
		"pending_orders":            d.PendingOrders,
		"product_count":             d.ProductCount,
		"sales":                     d.Sales,
	}
	if d.TopProduct != nil {
		resp["top_product"] = newProductView(*d.TopProduct)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ProducerHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "producer.get_orders")

	list, err := h.Orders.ListByProducer(ctx, c.Param("id"), c.QueryParam("status"))
	if err != nil {
		if errors.Is(err, orders.ErrValidation) {
			l.Warn("get_orders_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
		}
		l.Error("get_orders_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	products, err := h.productsFor(c, list)
	if err != nil {
		l.Error("get_orders_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	views := make([]orderView, len(list))
	for i, o := range list {
		views[i] = newOrderView(o, products)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": len(views), "orders": views})
}

func (h *ProducerHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "producer.get_products")

	total, products, err := h.Store.Products(ctx, catalog.ProductFilter{ProducerID: c.Param("id")})
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": newProductViews(products)})
}

func (h *ProducerHTTP) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "producer.update_order_status")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_status_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Orders.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrValidation):
			l.Warn("update_order_status_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
		case errors.Is(err, orders.ErrNotFound):
			l.Warn("update_order_status_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		case errors.Is(err, orders.ErrInvalidTransition):
			l.Warn("update_order_status_error", "status", 409, "error", err)
			return echo.NewHTTPError(http.StatusConflict, "status can only move forward")
		default:
			l.Error("update_order_status_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	products, err := h.productsFor(c, []models.Order{*order})
	if err != nil {
		l.Error("update_order_status_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("order_status_updated", "order_id", order.ID, "new_status", order.Status)
	return c.JSON(http.StatusOK, newOrderView(*order, products))
}
