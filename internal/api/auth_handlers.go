package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"boardscout/server/internal/auth"
	"boardscout/server/internal/database"
	"boardscout/server/internal/models"
)

// AuthHandler serves account signup and login.
type AuthHandler struct {
	db      *database.Database
	issuer  *auth.TokenIssuer
	limiter *auth.LoginLimiter
	cost    int
	logger  *logrus.Logger
}

func NewAuthHandler(db *database.Database, issuer *auth.TokenIssuer, limiter *auth.LoginLimiter, bcryptCost int, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		db:      db,
		issuer:  issuer,
		limiter: limiter,
		cost:    bcryptCost,
		logger:  logger,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password, h.cost)
	if err != nil {
		h.logger.WithError(err).Error("Failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create account"})
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		Role:         "owner",
	}
	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, database.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "An account with this email already exists"})
			return
		}
		h.logger.WithError(err).Error("Failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create account"})
		return
	}

	h.logger.WithField("email", user.Email).Info("Account created")
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	email := strings.ToLower(req.Email)

	if !h.limiter.Allow(c.Request.Context(), email) {
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "Too many login attempts, try again later"})
		return
	}

	user, err := h.db.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			h.limiter.RecordFailure(c.Request.Context(), email)
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		h.logger.WithError(err).Error("Failed to load user")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		h.limiter.RecordFailure(c.Request.Context(), email)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	h.limiter.Reset(c.Request.Context(), email)

	token, exp, err := h.issuer.Issue(user.ID, user.Email)
	if err != nil {
		h.logger.WithError(err).Error("Failed to issue token")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	maxAge := int(time.Until(exp).Seconds())
	c.SetCookie(auth.SessionCookie, token, maxAge, "/", "", false, true)

	h.logger.WithField("email", user.Email).Info("User logged in")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"expires": exp,
		"user":    user,
	})
}
