package services

import (
	"context"
	"errors"
	"sync"

	"github.com/gulzar-store/gulzar-api/models"
)

var errNotFound = errors.New("record not found")

// fakeStore implements CartStore, ProductReader and OrderStore in
// memory. InTransaction holds one mutex for the whole transaction,
// which models the row-lock serialization the real store gets from
// SELECT ... FOR UPDATE.
type fakeStore struct {
	mu       sync.Mutex
	carts    map[uint]map[uint]int
	products map[uint]models.Product
	orders   []models.Order
	items    []models.OrderItem
	nextID   uint

	getCartErr      error
	insertOrderErr  error
	insertItemErr   error
	clearCartCalled int

	// lockSequences records, per transaction, the product IDs in the
	// order their row locks were taken.
	lockSequences [][]uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		carts:    map[uint]map[uint]int{},
		products: map[uint]models.Product{},
		nextID:   1,
	}
}

func (s *fakeStore) setCart(userID uint, items map[uint]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[uint]int, len(items))
	for id, qty := range items {
		copied[id] = qty
	}
	s.carts[userID] = copied
}

func (s *fakeStore) setProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *fakeStore) stock(productID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[productID].Stock
}

func (s *fakeStore) lockOrders() [][]uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([][]uint, len(s.lockSequences))
	copy(copied, s.lockSequences)
	return copied
}

func (s *fakeStore) cart(userID uint) map[uint]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[uint]int, len(s.carts[userID]))
	for id, qty := range s.carts[userID] {
		copied[id] = qty
	}
	return copied
}

func (s *fakeStore) GetCart(_ context.Context, userID uint) (map[uint]int, error) {
	if s.getCartErr != nil {
		return nil, s.getCartErr
	}
	return s.cart(userID), nil
}

func (s *fakeStore) ClearCart(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCartCalled++
	delete(s.carts, userID)
	return nil
}

func (s *fakeStore) GetProductsByIDs(_ context.Context, ids []uint) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var products []models.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *fakeStore) InTransaction(_ context.Context, fn func(tx OrderTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &fakeTx{store: s, decrements: map[uint]int{}}
	err := fn(tx)
	if len(tx.locks) > 0 {
		s.lockSequences = append(s.lockSequences, tx.locks)
	}
	if err != nil {
		// rollback: staged writes are discarded
		return err
	}

	for id, qty := range tx.decrements {
		p := s.products[id]
		p.Stock -= qty
		s.products[id] = p
	}
	s.orders = append(s.orders, tx.orders...)
	s.items = append(s.items, tx.items...)
	return nil
}

type fakeTx struct {
	store      *fakeStore
	decrements map[uint]int
	orders     []models.Order
	items      []models.OrderItem
	locks      []uint
}

func (t *fakeTx) LockProductStock(productID uint) (int, error) {
	t.locks = append(t.locks, productID)
	p, ok := t.store.products[productID]
	if !ok {
		return 0, errNotFound
	}
	return p.Stock - t.decrements[productID], nil
}

func (t *fakeTx) DecrementStock(productID uint, quantity int) error {
	t.decrements[productID] += quantity
	return nil
}

func (t *fakeTx) InsertOrder(order *models.Order) error {
	if t.store.insertOrderErr != nil {
		return t.store.insertOrderErr
	}
	order.ID = t.store.nextID
	t.store.nextID++
	t.orders = append(t.orders, *order)
	return nil
}

func (t *fakeTx) InsertOrderItem(item *models.OrderItem) error {
	if t.store.insertItemErr != nil {
		return t.store.insertItemErr
	}
	t.items = append(t.items, *item)
	return nil
}

// recordingNotifier captures OrderPlaced calls.
type recordingNotifier struct {
	mu     sync.Mutex
	orders []*models.Order
}

func (n *recordingNotifier) OrderPlaced(_ context.Context, _ uint, order *models.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, order)
}
