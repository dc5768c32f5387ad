// Package checkout models the two-step checkout: delivery info, then
// payment, then a terminal "placed" flag. Confirming never appends an order
// to the catalog order book; the only effect is the session flag and a
// delayed reset back to the start (the storefront's redirect home).
package checkout

import (
	"errors"
	"sync"
	"time"
)

var ErrInvalidTransition = errors.New("invalid checkout transition")

type Step int

const (
	StepDelivery Step = 1
	StepPayment  Step = 2
)

// ResetDelay is how long the confirmation screen stays up before the
// session is sent back to the start.
const ResetDelay = 3 * time.Second

// DeliveryInfo and PaymentInfo are stored as-is; no field is validated,
// matching the storefront's free-form inputs.
type DeliveryInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	CEP     string `json:"cep"`
	City    string `json:"city"`
	State   string `json:"state"`
}

type PaymentInfo struct {
	CardName   string `json:"card_name"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type session struct {
	step       Step
	placed     bool
	delivery   DeliveryInfo
	payment    PaymentInfo
	resetTimer *time.Timer
}

type State struct {
	Step     Step
	Placed   bool
	Delivery DeliveryInfo
	Payment  PaymentInfo
}

// Manager owns one checkout session per browsing session. The reset timer
// armed by Confirm belongs to the session: Reset and Remove stop it, so a
// stale callback can never fire after the session moved on.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session

	resetDelay time.Duration

	// OnReset, when set, observes the automatic post-confirmation reset.
	OnReset func(sessionID string)
}

func NewManager(resetDelay time.Duration) *Manager {
	if resetDelay <= 0 {
		resetDelay = ResetDelay
	}
	return &Manager{
		sessions:   make(map[string]*session),
		resetDelay: resetDelay,
	}
}

func (m *Manager) get(sessionID string) *session {
	s, ok := m.sessions[sessionID]
	if !ok {
		s = &session{step: StepDelivery}
		m.sessions[sessionID] = s
	}
	return s
}

func (m *Manager) State(sessionID string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(sessionID)
	return State{Step: s.step, Placed: s.placed, Delivery: s.delivery, Payment: s.payment}
}

// Continue advances to the payment step. The delivery payload is stored but
// never validated.
func (m *Manager) Continue(sessionID string, info DeliveryInfo) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(sessionID)
	if s.placed {
		return State{}, ErrInvalidTransition
	}
	s.delivery = info
	s.step = StepPayment
	return State{Step: s.step, Placed: s.placed, Delivery: s.delivery, Payment: s.payment}, nil
}

// Back returns to the delivery step unconditionally.
func (m *Manager) Back(sessionID string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(sessionID)
	if s.placed {
		return State{}, ErrInvalidTransition
	}
	s.step = StepDelivery
	return State{Step: s.step, Placed: s.placed, Delivery: s.delivery, Payment: s.payment}, nil
}

// Confirm marks the session as placed and arms the reset timer. It is only
// legal from the payment step. No order record is created anywhere.
func (m *Manager) Confirm(sessionID string, info PaymentInfo) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(sessionID)
	if s.step != StepPayment || s.placed {
		return State{}, ErrInvalidTransition
	}
	s.payment = info
	s.placed = true
	s.resetTimer = time.AfterFunc(m.resetDelay, func() {
		m.autoReset(sessionID)
	})
	return State{Step: s.step, Placed: s.placed, Delivery: s.delivery, Payment: s.payment}, nil
}

func (m *Manager) autoReset(sessionID string) {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if !ok || !s.placed {
		m.mu.Unlock()
		return
	}
	s.reset()
	hook := m.OnReset
	m.mu.Unlock()

	if hook != nil {
		hook(sessionID)
	}
}

// Reset puts the session back at the delivery step and cancels any pending
// automatic reset.
func (m *Manager) Reset(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		s.reset()
	}
}

// Remove drops the session entirely, stopping its timer first.
func (m *Manager) Remove(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		if s.resetTimer != nil {
			s.resetTimer.Stop()
		}
		delete(m.sessions, sessionID)
	}
}

func (s *session) reset() {
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
	s.step = StepDelivery
	s.placed = false
	s.delivery = DeliveryInfo{}
	s.payment = PaymentInfo{}
}
