package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gulzar-store/gulzar-api/models"
)

// CheckoutForm carries the fields submitted from the checkout page.
// The client never supplies a total; it is recomputed here.
type CheckoutForm struct {
	ShippingAddress string `json:"shippingAddress"`
	DeliveryDate    string `json:"deliveryDate"`
	PaymentMethod   string `json:"paymentMethod"`
	CardNumber      string `json:"cardNumber"`
	CardholderName  string `json:"cardholderName"`
	ExpiryMonth     int    `json:"expiryMonth"`
	ExpiryYear      int    `json:"expiryYear"`
	CVV             string `json:"cvv"`
}

// CartStore reads and clears a user's cart.
type CartStore interface {
	GetCart(ctx context.Context, userID uint) (map[uint]int, error)
	ClearCart(ctx context.Context, userID uint) error
}

// ProductReader loads current product data outside any transaction.
type ProductReader interface {
	GetProductsByIDs(ctx context.Context, ids []uint) ([]models.Product, error)
}

// OrderTx is the transactional surface used during the stock-check-and-
// commit phase. Every method runs inside the transaction opened by
// OrderStore.InTransaction; LockProductStock must hold an exclusive row
// lock until the transaction ends.
type OrderTx interface {
	LockProductStock(productID uint) (int, error)
	DecrementStock(productID uint, quantity int) error
	InsertOrder(order *models.Order) error
	InsertOrderItem(item *models.OrderItem) error
}

// OrderStore opens the placement transaction. If fn returns an error
// the transaction is rolled back and nothing is visible afterwards.
type OrderStore interface {
	InTransaction(ctx context.Context, fn func(tx OrderTx) error) error
}

// Notifier records a post-placement notification for the user. Failures
// are logged, never surfaced: the order has already committed.
type Notifier interface {
	OrderPlaced(ctx context.Context, userID uint, order *models.Order)
}

// OrderPlacementService validates a checkout form against the caller's
// cart, reserves stock under row locks and records the order atomically.
type OrderPlacementService struct {
	carts    CartStore
	products ProductReader
	orders   OrderStore
	notifier Notifier
	now      func() time.Time
}

func NewOrderPlacementService(carts CartStore, products ProductReader, orders OrderStore, notifier Notifier) *OrderPlacementService {
	return &OrderPlacementService{
		carts:    carts,
		products: products,
		orders:   orders,
		notifier: notifier,
		now:      time.Now,
	}
}

// WithClock overrides the service clock. Tests use this to pin "today"
// for delivery-date and expiry validation.
func (s *OrderPlacementService) WithClock(now func() time.Time) *OrderPlacementService {
	s.now = now
	return s
}

// PlaceOrder runs one placement attempt for userID.
//
// The sequence is: load cart, validate the form, recompute the total
// from current prices, then inside a single transaction re-read every
// product's stock under an exclusive lock, insert the order and its
// items and decrement stock. The cart is cleared only after the
// transaction commits. On any failure no order rows exist and the cart
// is untouched.
func (s *OrderPlacementService) PlaceOrder(ctx context.Context, userID uint, form CheckoutForm) (uint, error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return 0, &PersistenceError{Err: err}
	}
	if len(cart) == 0 {
		return 0, ErrEmptyCart
	}

	deliveryDate, verr := validateForm(form, s.now())
	if verr != nil {
		return 0, verr
	}

	// Locks are always taken in ascending product-ID order so two
	// overlapping checkouts can never wait on each other's rows.
	ids := make([]uint, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	products, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return 0, &PersistenceError{Err: err}
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for id := range cart {
		if _, ok := byID[id]; !ok {
			// A product removed from the catalog since it was carted
			// reads as having no stock left.
			return 0, &InsufficientStockError{ProductID: id}
		}
	}

	total := decimal.Zero
	for _, id := range ids {
		total = total.Add(byID[id].Price.Mul(decimal.NewFromInt(int64(cart[id]))))
	}

	order := &models.Order{
		OrderNumber:     newOrderNumber(),
		UserID:          userID,
		Total:           total,
		Status:          models.OrderStatusProcessing,
		PaymentStatus:   models.PaymentStatusPaid,
		ShippingAddress: strings.TrimSpace(form.ShippingAddress),
		DeliveryDate:    deliveryDate,
		PaymentMethod:   strings.ToLower(strings.TrimSpace(form.PaymentMethod)),
		CardLast4:       maskCardNumber(form.CardNumber),
		CardholderName:  strings.TrimSpace(form.CardholderName),
		CardExpiryMonth: form.ExpiryMonth,
		CardExpiryYear:  form.ExpiryYear,
	}

	err = s.orders.InTransaction(ctx, func(tx OrderTx) error {
		for _, id := range ids {
			stock, err := tx.LockProductStock(id)
			if err != nil {
				return &PersistenceError{Err: err}
			}
			if stock < cart[id] {
				return &InsufficientStockError{ProductID: id}
			}
		}

		if err := tx.InsertOrder(order); err != nil {
			return &PersistenceError{Err: err}
		}
		for _, id := range ids {
			item := &models.OrderItem{
				OrderID:   order.ID,
				ProductID: id,
				Name:      byID[id].Name,
				UnitPrice: byID[id].Price,
				Quantity:  cart[id],
			}
			if err := tx.InsertOrderItem(item); err != nil {
				return &PersistenceError{Err: err}
			}
		}
		for _, id := range ids {
			if err := tx.DecrementStock(id, cart[id]); err != nil {
				return &PersistenceError{Err: err}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := s.carts.ClearCart(ctx, userID); err != nil {
		// The order is committed; a stale cart is recoverable.
		log.Printf("order %d placed but cart for user %d not cleared: %v", order.ID, userID, err)
	}

	if s.notifier != nil {
		s.notifier.OrderPlaced(ctx, userID, order)
	}

	return order.ID, nil
}
