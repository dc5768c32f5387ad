package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/feirafresca/storefront/internal/cart"
	"github.com/feirafresca/storefront/internal/checkout"
	"github.com/feirafresca/storefront/pkg/logging"
)

const orderEventsTopic = "order_events"

type CheckoutHTTP struct {
	Manager *checkout.Manager
	Cart    *CartHTTP

	// Events is optional, same contract as the cart service's notifier.
	Events cart.Notifier
}

type checkoutStateView struct {
	Step    checkout.Step `json:"step"`
	Placed  bool          `json:"placed"`
	Message string        `json:"message,omitempty"`
	Summary *quoteView    `json:"summary"`
}

func (h *CheckoutHTTP) stateView(c echo.Context, st checkout.State) (*checkoutStateView, error) {
	items, err := h.Cart.Svc.Items(c.Request().Context(), sessionID(c))
	if err != nil {
		return nil, err
	}
	summary, err := h.Cart.quote(c, items)
	if err != nil {
		return nil, err
	}

	view := &checkoutStateView{Step: st.Step, Placed: st.Placed, Summary: summary}
	if st.Placed {
		view.Message = "Pedido Realizado com Sucesso!"
	}
	return view, nil
}

func (h *CheckoutHTTP) GetState(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.state")

	view, err := h.stateView(c, h.Manager.State(sessionID(c)))
	if err != nil {
		l.Error("checkout_state_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CheckoutHTTP) Continue(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.continue")

	var info checkout.DeliveryInfo
	if err := c.Bind(&info); err != nil {
		l.Warn("checkout_continue_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	st, err := h.Manager.Continue(sessionID(c), info)
	if err != nil {
		l.Warn("checkout_continue_error", "status", 409, "error", err)
		return echo.NewHTTPError(http.StatusConflict, "checkout already placed")
	}

	view, err := h.stateView(c, st)
	if err != nil {
		l.Error("checkout_continue_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CheckoutHTTP) Back(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.back")

	st, err := h.Manager.Back(sessionID(c))
	if err != nil {
		l.Warn("checkout_back_error", "status", 409, "error", err)
		return echo.NewHTTPError(http.StatusConflict, "checkout already placed")
	}

	view, err := h.stateView(c, st)
	if err != nil {
		l.Error("checkout_back_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, view)
}

// Confirm places the order in UI terms only: the session is flagged and the
// reset timer armed. Nothing is appended to the order book.
func (h *CheckoutHTTP) Confirm(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.confirm")

	var info checkout.PaymentInfo
	if err := c.Bind(&info); err != nil {
		l.Warn("checkout_confirm_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	st, err := h.Manager.Confirm(sessionID(c), info)
	if err != nil {
		if errors.Is(err, checkout.ErrInvalidTransition) {
			l.Warn("checkout_confirm_error", "status", 409, "error", err)
			return echo.NewHTTPError(http.StatusConflict, "confirm requires the payment step")
		}
		l.Error("checkout_confirm_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if h.Events != nil {
		ev := map[string]interface{}{"type": "checkout_placed", "session_id": sessionID(c)}
		if err := h.Events.Publish(ctx, orderEventsTopic, sessionID(c), ev); err != nil {
			l.Warn("checkout_event_publish_failed", "error", err)
		}
	}

	view, err := h.stateView(c, st)
	if err != nil {
		l.Error("checkout_confirm_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	l.Info("checkout_placed")
	return c.JSON(http.StatusOK, view)
}
