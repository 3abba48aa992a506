package checkout

import (
	"errors"
	"time"

	"github.com/Lawford1337/mood/internal/cart"
	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart is empty")

// Receipt is the confirmation handed back after checkout. No payment
// happens anywhere; the total is captured for display and the cart is
// cleared, nothing else.
type Receipt struct {
	OrderRef  string      `json:"orderRef"`
	Items     []cart.Line `json:"items"`
	Total     int         `json:"total"`
	Count     int         `json:"count"`
	CreatedAt string      `json:"createdAt"`
}

// Service turns a confirmed checkout into a receipt and an empty cart.
type Service struct {
	cart *cart.Service
}

func NewService(cartService *cart.Service) *Service {
	return &Service{cart: cartService}
}

// Confirm captures the cart into a receipt and clears it. An empty cart
// cannot be checked out.
func (s *Service) Confirm() (Receipt, error) {
	snap := s.cart.Snapshot()
	if len(snap.Items) == 0 {
		return Receipt{}, ErrEmptyCart
	}

	r := Receipt{
		OrderRef:  uuid.NewString(),
		Items:     snap.Items,
		Total:     snap.Total,
		Count:     snap.Count,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.cart.Clear()
	return r, nil
}
