package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gulzar-store/gulzar-api/i18n"
	"github.com/gulzar-store/gulzar-api/initializers"
	"github.com/gulzar-store/gulzar-api/models"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	msgInvalidInput         = "invalid input"
	msgUserAlreadyExists    = "user with this email already exists"
	msgFailedToHashPassword = "failed to hash password"
	msgInvalidCredentials   = "invalid email or password"
	msgFailedToCreateUser   = "failed to create user"
	msgFailedToCreateToken  = "failed to generate token"
	msgUserCreated          = "User created successfully."
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	var permissions []string
	if len(user.Permissions) > 0 {
		// Claims carry the admin's permission scopes so route guards
		// need no extra lookup.
		if err := json.Unmarshal(user.Permissions, &permissions); err != nil {
			return "", err
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":     user.ID,
		"email":       user.Email,
		"role":        user.Role,
		"permissions": permissions,
		"lang":        user.Language,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func checkUserExists(email string) (bool, error) {
	var existingUser models.User
	result := initializers.DB.Where("email = ?", email).Find(&existingUser)
	return result.RowsAffected > 0, result.Error
}

func Signup(ctx *gin.Context) {
	var signupData models.SignupData
	if err := ctx.ShouldBindJSON(&signupData); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	exists, err := checkUserExists(signupData.Email)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateUser)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusConflict, msgUserAlreadyExists)
		return
	}

	hashed, err := hashPassword(signupData.Password)
	if err != nil {
		log.Println("Hash error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		Fullname: signupData.Fullname,
		Email:    signupData.Email,
		Phone:    signupData.Phone,
		Password: hashed,
		Role:     models.RoleCustomer,
		Language: i18n.Normalize(signupData.Language),
	}
	if result := initializers.DB.Create(&user); result.Error != nil {
		log.Println("Create error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateUser)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated, "id": user.ID})
}

func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var user models.User
	if result := initializers.DB.Where("email = ?", loginData.Email).First(&user); result.Error != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	token, err := generateJWT(user)
	if err != nil {
		log.Println("JWT error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"fullname": user.Fullname,
			"email":    user.Email,
			"role":     user.Role,
			"language": user.Language,
		},
	})
}
