package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/gulzar-store/gulzar-api/models"
	"github.com/gulzar-store/gulzar-api/services"
)

func setupMockDB(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewGormStore(gdb), mock
}

func TestLockProductStock_UsesRowLock(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `products` WHERE .* FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "stock"}).AddRow(5, 10))
	mock.ExpectCommit()

	err := store.InTransaction(context.Background(), func(tx services.OrderTx) error {
		stock, err := tx.LockProductStock(5)
		require.NoError(t, err)
		assert.Equal(t, 10, stock)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An error returned from the transaction body must roll everything back.
func TestInTransaction_RollsBackOnError(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `products` WHERE .* FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "stock"}).AddRow(5, 1))
	mock.ExpectRollback()

	wantErr := errors.New("insufficient stock")
	err := store.InTransaction(context.Background(), func(tx services.OrderTx) error {
		stock, lockErr := tx.LockProductStock(5)
		require.NoError(t, lockErr)
		require.Less(t, stock, 2)
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTransaction_FullPlacementSequence(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `products` WHERE .* FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "stock"}).AddRow(5, 10))
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO `order_items`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `products` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.InTransaction(context.Background(), func(tx services.OrderTx) error {
		stock, err := tx.LockProductStock(5)
		if err != nil {
			return err
		}
		require.Equal(t, 10, stock)

		order := &models.Order{
			OrderNumber:   "GLZ-TEST",
			UserID:        1,
			Total:         decimal.RequireFromString("50.00"),
			PaymentStatus: models.PaymentStatusPaid,
		}
		if err := tx.InsertOrder(order); err != nil {
			return err
		}
		require.Equal(t, uint(42), order.ID)

		item := &models.OrderItem{
			OrderID:   order.ID,
			ProductID: 5,
			Quantity:  2,
			UnitPrice: decimal.RequireFromString("25.00"),
		}
		if err := tx.InsertOrderItem(item); err != nil {
			return err
		}
		return tx.DecrementStock(5, 2)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCart_MapsItemsToSnapshot(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `carts` WHERE user_id = .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(3, 1))
	mock.ExpectQuery("SELECT .* FROM `cart_items` WHERE `cart_items`.`cart_id` = .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity"}).
			AddRow(10, 3, 5, 2).
			AddRow(11, 3, 7, 1))

	snapshot, err := store.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{5: 2, 7: 1}, snapshot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCart_NoCartMeansEmptySnapshot(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `carts` WHERE user_id = .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	snapshot, err := store.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

// ClearCart must remove the rows outright. A soft delete would leave
// the (cart_id, product_id) pairs in the unique index and the next
// add-to-cart of the same product would fail, so a customer could
// never re-buy anything after checking out.
func TestClearCart_HardDeletesItems(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `carts` WHERE user_id = .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(3, 1))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `cart_items` WHERE cart_id = .*").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := store.ClearCart(context.Background(), 1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
