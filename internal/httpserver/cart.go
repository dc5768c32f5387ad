package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/feirafresca/storefront/internal/cart"
	"github.com/feirafresca/storefront/internal/catalog"
	"github.com/feirafresca/storefront/internal/models"
	"github.com/feirafresca/storefront/internal/pricing"
	"github.com/feirafresca/storefront/pkg/logging"
)

// Toast messages shown by the storefront for each cart outcome.
var outcomeMessages = map[cart.Outcome]string{
	cart.OutcomeAdded:   "Produto adicionado ao carrinho",
	cart.OutcomeUpdated: "Quantidade atualizada no carrinho",
	cart.OutcomeRemoved: "Produto removido do carrinho",
}

type CartHTTP struct {
	Svc   *cart.Service
	Store *catalog.Store
}

func (h *CartHTTP) quote(c echo.Context, items []models.CartItem) (*quoteView, error) {
	ctx := c.Request().Context()

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ProductID
	}
	products, err := h.Store.ProductsByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	view := newQuoteView(pricing.Calculate(items, products))
	return &view, nil
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	items, err := h.Svc.Items(ctx, sessionID(c))
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	view, err := h.quote(c, items)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	outcome, item, err := h.Svc.Add(ctx, sessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrValidation) {
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	status := http.StatusOK
	if outcome == cart.OutcomeAdded {
		status = http.StatusCreated
	}
	l.Info("cart_item_added", "product_id", req.ProductID, "outcome", outcome)
	return c.JSON(status, echo.Map{
		"item":    item,
		"outcome": outcome,
		"message": outcomeMessages[outcome],
	})
}

func (h *CartHTTP) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_quantity")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	outcome, item, err := h.Svc.UpdateQuantity(ctx, sessionID(c), c.Param("productID"), req.Quantity)
	if err != nil {
		l.Error("update_quantity_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("cart_quantity_updated", "product_id", c.Param("productID"), "outcome", outcome)
	return c.JSON(http.StatusOK, echo.Map{
		"item":    item,
		"outcome": outcome,
		"message": outcomeMessages[outcome],
	})
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	outcome, err := h.Svc.Remove(ctx, sessionID(c), c.Param("productID"))
	if err != nil {
		l.Error("remove_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("cart_item_removed", "product_id", c.Param("productID"), "outcome", outcome)
	return c.JSON(http.StatusOK, echo.Map{
		"outcome": outcome,
		"message": outcomeMessages[outcome],
	})
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	if err := h.Svc.Clear(ctx, sessionID(c)); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, "cart cleared")
}
