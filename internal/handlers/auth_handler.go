package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/config"
	"github.com/careconnect/care-marketplace/internal/httperr"
	infraRepo "github.com/careconnect/care-marketplace/internal/infra/repository"
	"github.com/careconnect/care-marketplace/internal/models"
	"github.com/careconnect/care-marketplace/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	repo   *infraRepo.IdentityGormRepository
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:     db,
		repo:   infraRepo.NewIdentityGormRepository(db),
		config: cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	GivenName string `json:"given_name" binding:"required"`
	Surname   string `json:"surname" binding:"required"`
	City      string `json:"city"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`

	ProfileDescription string `json:"profile_description"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "Email needs an @ and a domain segment.")
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Phone must be exactly 11 digits.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
		return
	}

	user := models.User{
		Email:              email,
		GivenName:          req.GivenName,
		Surname:            req.Surname,
		City:               req.City,
		Phone:              req.Phone,
		PasswordHash:       string(hashed),
		ProfileDescription: req.ProfileDescription,
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	if err := h.repo.CreateUser(ctx, &user); err != nil {
		httperr.FromError(c, err)
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not sign token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"given_name": user.GivenName,
			"surname":    user.Surname,
			"city":       user.City,
			"phone":      user.Phone,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := h.opCtx(c)
	defer cancel()

	var user models.User
	if err := h.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email or password is wrong.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email or password is wrong.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not sign token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"given_name": user.GivenName,
			"surname":    user.Surname,
		},
		"token": token,
	})
}

// --------- Helpers ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": float64(user.ID),
		"exp": time.Now().Add(72 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func (h *AuthHandler) opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.config.LockTimeout)
}
