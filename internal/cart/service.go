// Package cart implements the per-session shopping cart: an ordered list of
// (product, quantity) rows with merge-or-insert add semantics. The cart
// never checks quantities against catalog stock; the storefront's quantity
// picker is the only guard, exactly like the original behavior.
package cart

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/feirafresca/storefront/internal/models"
	"github.com/feirafresca/storefront/pkg/logging"
)

var ErrValidation = errors.New("validation")

// Outcome tells the caller which user-visible notification to show.
type Outcome string

const (
	OutcomeAdded   Outcome = "added"
	OutcomeUpdated Outcome = "updated"
	OutcomeRemoved Outcome = "removed"
	OutcomeNone    Outcome = "none"
)

const eventsTopic = "cart_events"

type Notifier interface {
	Publish(ctx context.Context, topic, key string, event interface{}) error
}

type Event struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type Service struct {
	DB     *gorm.DB
	Events Notifier
}

// Items returns the session's cart rows in insertion order.
func (s *Service) Items(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// Add merges the quantity into an existing row for the product or inserts a
// new one at the end of the cart.
func (s *Service) Add(ctx context.Context, sessionID, productID string, quantity int) (Outcome, *models.CartItem, error) {
	if productID == "" {
		return OutcomeNone, nil, fmt.Errorf("product id required: %w", ErrValidation)
	}
	if quantity <= 0 {
		return OutcomeNone, nil, fmt.Errorf("quantity must be more than zero: %w", ErrValidation)
	}

	var item models.CartItem
	err := s.DB.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&item).Error

	switch {
	case err == nil:
		item.Quantity += quantity
		if err := s.DB.WithContext(ctx).Save(&item).Error; err != nil {
			return OutcomeNone, nil, err
		}
		s.publish(ctx, Event{Type: "cart_quantity_updated", SessionID: sessionID, ProductID: productID, Quantity: item.Quantity})
		return OutcomeUpdated, &item, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{SessionID: sessionID, ProductID: productID, Quantity: quantity}
		if err := s.DB.WithContext(ctx).Create(&item).Error; err != nil {
			return OutcomeNone, nil, err
		}
		s.publish(ctx, Event{Type: "cart_item_added", SessionID: sessionID, ProductID: productID, Quantity: quantity})
		return OutcomeAdded, &item, nil

	default:
		return OutcomeNone, nil, err
	}
}

// UpdateQuantity replaces the row's quantity. A quantity of zero or below
// removes the row. Updating an absent product is a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (Outcome, *models.CartItem, error) {
	if productID == "" {
		return OutcomeNone, nil, fmt.Errorf("product id required: %w", ErrValidation)
	}
	if quantity <= 0 {
		outcome, err := s.Remove(ctx, sessionID, productID)
		return outcome, nil, err
	}

	var item models.CartItem
	err := s.DB.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OutcomeNone, nil, nil
	}
	if err != nil {
		return OutcomeNone, nil, err
	}

	item.Quantity = quantity
	if err := s.DB.WithContext(ctx).Save(&item).Error; err != nil {
		return OutcomeNone, nil, err
	}
	s.publish(ctx, Event{Type: "cart_quantity_updated", SessionID: sessionID, ProductID: productID, Quantity: quantity})
	return OutcomeUpdated, &item, nil
}

// Remove deletes the row for the product. Removing an absent product is a
// no-op, so the operation is idempotent.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) (Outcome, error) {
	if productID == "" {
		return OutcomeNone, fmt.Errorf("product id required: %w", ErrValidation)
	}

	res := s.DB.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return OutcomeNone, res.Error
	}
	if res.RowsAffected == 0 {
		return OutcomeNone, nil
	}
	s.publish(ctx, Event{Type: "cart_item_removed", SessionID: sessionID, ProductID: productID})
	return OutcomeRemoved, nil
}

// Clear drops every row of the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.CartItem{}).Error
}

// publish is best effort: a broker outage must not break the cart.
func (s *Service) publish(ctx context.Context, ev Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, eventsTopic, ev.SessionID, ev); err != nil {
		logging.FromContext(ctx).Warn("cart_event_publish_failed", "type", ev.Type, "error", err)
	}
}
