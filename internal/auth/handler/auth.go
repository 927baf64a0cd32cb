package handler

import (
	"net/http"
	"strings"

	"storefront-affiliates/internal/apierrors"
	"storefront-affiliates/internal/auth/processor"
	"storefront-affiliates/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Keys set on the gin context by HandleJWTMiddleware
const (
	ContextUserID = "User-ID"
	ContextRole   = "Role"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

type EmailLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleEmailLogin(c *gin.Context) {
	var emailLoginRequest EmailLoginRequest
	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&emailLoginRequest); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	token, err := h.authProcessor.Login(ctx, emailLoginRequest.Email, emailLoginRequest.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, err)
		c.Abort()
		return
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing a subject"))
		c.Abort()
		return
	}

	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: sub},
		observability.Field{Key: "role", Value: claims.Role},
	))
	c.Set(ContextUserID, sub)
	c.Set(ContextRole, claims.Role)
	c.Next()
}

// RequireRole rejects requests whose token does not carry one of roles.
// It must run after HandleJWTMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		apierrors.RespondWithError(c, apierrors.Forbidden(apierrors.CodeForbidden, "You do not have access to this resource"))
		c.Abort()
	}
}

// UserID returns the authenticated user ID set by HandleJWTMiddleware,
// writing a 401 when it is missing or malformed.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(ContextUserID)
	if !exists {
		apierrors.RespondWithError(c, apierrors.Unauthorized("User ID not found in context"))
		return uuid.UUID{}, false
	}
	rawID, ok := raw.(string)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid user ID in token"))
		return uuid.UUID{}, false
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid user ID in token"))
		return uuid.UUID{}, false
	}
	return userID, true
}

func (h *Handler) GetUserInfo(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := UserID(c)
	if !ok {
		return
	}
	user, err := h.authProcessor.GetUserByID(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
