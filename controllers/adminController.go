package controllers

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/gulzar-store/gulzar-api/initializers"
	"github.com/gulzar-store/gulzar-api/models"
)

type createAdminInput struct {
	Fullname    string   `json:"fullname" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	Permissions []string `json:"permissions"`
}

func validPermissions(permissions []string) bool {
	for _, p := range permissions {
		switch p {
		case models.PermProducts, models.PermOrders, models.PermUsers, models.PermReviews:
		default:
			return false
		}
	}
	return true
}

// CreateAdmin lets a super admin create a permission-scoped admin.
func CreateAdmin(ctx *gin.Context) {
	var input createAdminInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if !validPermissions(input.Permissions) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown permission scope")
		return
	}

	exists, err := checkUserExists(input.Email)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateUser)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusConflict, msgUserAlreadyExists)
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	permissions, err := json.Marshal(input.Permissions)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateUser)
		return
	}

	admin := models.User{
		Fullname:    input.Fullname,
		Email:       input.Email,
		Password:    hashed,
		Role:        models.RoleAdmin,
		Permissions: datatypes.JSON(permissions),
	}
	if result := initializers.DB.Create(&admin); result.Error != nil {
		log.Println("Create error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateUser)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Admin created successfully.",
		"id":      admin.ID,
	})
}

// UpdateAdminPermissions replaces an admin's permission scopes.
func UpdateAdminPermissions(ctx *gin.Context) {
	adminId, err := strconv.Atoi(ctx.Param("adminId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid admin id")
		return
	}

	var input struct {
		Permissions []string `json:"permissions" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if !validPermissions(input.Permissions) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown permission scope")
		return
	}

	var admin models.User
	if err := initializers.DB.First(&admin, adminId).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Admin not found")
		return
	}
	if admin.Role != models.RoleAdmin {
		sendErrorResponse(ctx, http.StatusConflict, "User is not a permission-scoped admin")
		return
	}

	permissions, err := json.Marshal(input.Permissions)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update permissions")
		return
	}

	if err := initializers.DB.Model(&admin).
		Update("permissions", datatypes.JSON(permissions)).Error; err != nil {
		log.Println("Update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update permissions")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Permissions updated successfully."})
}

// DeleteAdmin removes an admin account. Super admin accounts cannot be
// deleted through this endpoint.
func DeleteAdmin(ctx *gin.Context) {
	adminId, err := strconv.Atoi(ctx.Param("adminId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid admin id")
		return
	}

	var admin models.User
	if err := initializers.DB.First(&admin, adminId).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Admin not found")
		return
	}
	if admin.Role != models.RoleAdmin {
		sendErrorResponse(ctx, http.StatusConflict, "User is not a deletable admin")
		return
	}

	// Unscoped: a soft-deleted account would keep holding the unique
	// email index and block re-registering that address.
	if result := initializers.DB.Unscoped().Delete(&admin); result.Error != nil {
		log.Println("Delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete admin")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Admin deleted successfully."})
}

// GetUsers is the admin user listing with pagination and email search.
func GetUsers(ctx *gin.Context) {
	var users []models.User

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := initializers.DB.Model(&models.User{})
	countQuery := initializers.DB.Model(&models.User{})

	if search := ctx.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("email LIKE ? OR fullname LIKE ?", like, like)
		countQuery = countQuery.Where("email LIKE ? OR fullname LIKE ?", like, like)
	}
	if role := ctx.Query("role"); role != "" {
		query = query.Where("role = ?", role)
		countQuery = countQuery.Where("role = ?", role)
	}

	if result := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&users); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch users", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"users": users,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": int(totalPages) > page,
		},
	})
}
