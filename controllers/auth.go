package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"knowledge-portal-api/config"
	"knowledge-portal-api/middleware"
	"knowledge-portal-api/services"
	"knowledge-portal-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Role       string `json:"role" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	NationalID string `json:"nid"`
	Password   string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string             `json:"token"`
	Identity *services.Identity `json:"identity"`
	Message  string             `json:"message"`
}

// Login authenticates a contributor, referee or the coordinator. Referee and
// coordinator logins additionally require the national id. Missing records,
// wrong passwords and deactivated referees all produce the same response so
// account state cannot be probed.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var identity *services.Identity
	var err error
	switch req.Role {
	case utils.RoleUser:
		identity, err = services.AuthenticateUser(config.DB, req.Phone, req.Password)
	case utils.RoleReferee:
		identity, err = services.AuthenticateReferee(config.DB, req.Phone, req.NationalID, req.Password)
	case utils.RoleManager:
		identity, err = services.AuthenticateManager(req.Phone, req.NationalID, req.Password)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}
	if err != nil {
		// ErrNotFound and ErrInactive intentionally collapse here.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := generateToken(identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		Identity: identity,
		Message:  "Login successful",
	})
}

type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	NationalID string `json:"nid" binding:"required"`
	Email      string `json:"email"`
	Password   string `json:"password" binding:"required"`
}

// Register self-registers a contributor account.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	user, err := services.RegisterUser(config.DB, req.Name, req.Phone, req.NationalID, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration successful",
		"user":    user,
	})
}

// generateToken creates JWT token
func generateToken(identity *services.Identity) (string, error) {
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil {
		expireHours = 24 // default 24 hours
	}

	claims := middleware.Claims{
		Phone: identity.Phone,
		Name:  identity.Name,
		Role:  identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
