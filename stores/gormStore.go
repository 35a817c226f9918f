package stores

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gulzar-store/gulzar-api/models"
	"github.com/gulzar-store/gulzar-api/services"
)

// GormStore implements the checkout service's cart, product and order
// stores on top of one *gorm.DB.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetCart(ctx context.Context, userID uint) (map[uint]int, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return map[uint]int{}, nil
	}
	if err != nil {
		return nil, err
	}

	snapshot := make(map[uint]int, len(cart.Items))
	for _, item := range cart.Items {
		if item.Quantity > 0 {
			snapshot[item.ProductID] = item.Quantity
		}
	}
	return snapshot, nil
}

func (s *GormStore) ClearCart(ctx context.Context, userID uint) error {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	// Hard delete: a soft-deleted row would keep occupying the
	// (cart_id, product_id) unique index and block re-adding the
	// product after checkout.
	return s.db.WithContext(ctx).Unscoped().Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
}

func (s *GormStore) GetProductsByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// InTransaction runs fn inside one database transaction. gorm rolls the
// transaction back when fn returns an error, so a stock shortfall or
// insert failure leaves no trace.
func (s *GormStore) InTransaction(ctx context.Context, fn func(tx services.OrderTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormOrderTx{tx: tx})
	})
}

type gormOrderTx struct {
	tx *gorm.DB
}

// LockProductStock re-reads the product's stock under SELECT ... FOR
// UPDATE. The row lock is held until the surrounding transaction ends,
// serializing concurrent checkouts of the same product.
func (t *gormOrderTx) LockProductStock(productID uint) (int, error) {
	var product models.Product
	err := t.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "stock").
		First(&product, productID).Error
	if err != nil {
		return 0, err
	}
	return product.Stock, nil
}

func (t *gormOrderTx) DecrementStock(productID uint, quantity int) error {
	return t.tx.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock - ?", quantity)).Error
}

func (t *gormOrderTx) InsertOrder(order *models.Order) error {
	return t.tx.Create(order).Error
}

func (t *gormOrderTx) InsertOrderItem(item *models.OrderItem) error {
	return t.tx.Create(item).Error
}
