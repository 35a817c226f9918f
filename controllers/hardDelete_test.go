package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/gulzar-store/gulzar-api/initializers"
	"github.com/gulzar-store/gulzar-api/models"
)

// Remove/delete handlers for rows with hard unique indexes must delete
// outright: a soft delete keeps the dead row in the index and the next
// insert of the same pair fails, breaking every remove-then-re-add flow.

func setupControllerDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	previous := initializers.DB
	initializers.DB = gdb
	t.Cleanup(func() {
		initializers.DB = previous
		db.Close()
	})
	return mock
}

func authedTestContext(t *testing.T, userID uint, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
	ctx.Set("userID", userID)
	ctx.Set("user", jwt.MapClaims{"role": models.RoleCustomer})
	ctx.Params = params
	return ctx, recorder
}

func TestRemoveCartItem_HardDeletesRow(t *testing.T) {
	mock := setupControllerDB(t)

	mock.ExpectQuery("SELECT .* FROM `carts` WHERE user_id = .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(3, 1))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `cart_items` WHERE id = .* AND cart_id = .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx, recorder := authedTestContext(t, 1, gin.Params{{Key: "itemId", Value: "10"}})
	RemoveCartItem(ctx)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveFromWishlist_HardDeletesRow(t *testing.T) {
	mock := setupControllerDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `wishlist_items` WHERE user_id = .* AND product_id = .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx, recorder := authedTestContext(t, 1, gin.Params{{Key: "productId", Value: "5"}})
	RemoveFromWishlist(ctx)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReview_HardDeletesRow(t *testing.T) {
	mock := setupControllerDB(t)

	mock.ExpectQuery("SELECT .* FROM `reviews` WHERE .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id"}).AddRow(8, 1, 5))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `reviews` WHERE .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx, recorder := authedTestContext(t, 1, gin.Params{{Key: "reviewId", Value: "8"}})
	DeleteReview(ctx)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAdmin_HardDeletesRow(t *testing.T) {
	mock := setupControllerDB(t)

	mock.ExpectQuery("SELECT .* FROM `users` WHERE .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(4, "florist@gulzar.store", models.RoleAdmin))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `users` WHERE .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx, recorder := authedTestContext(t, 1, gin.Params{{Key: "adminId", Value: "4"}})
	DeleteAdmin(ctx)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
