package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/server/http/dto"
	"github.com/polkiloo/atelier/internal/server/http/middleware"
)

// AuthHandler processes registration and login. Both answer with the session
// token in the Authorization header and the auth cookie.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

type issueFunc func(ctx context.Context, login, password string) (string, error)

// Register handles POST /api/user/register. Empty credentials are a 400, a
// taken login a 409.
func (h *AuthHandler) Register(c *gin.Context) {
	h.issue(c, h.facade.Register, http.StatusBadRequest)
}

// Login handles POST /api/user/login. Wrong credentials are a 401.
func (h *AuthHandler) Login(c *gin.Context) {
	h.issue(c, h.facade.Authenticate, http.StatusUnauthorized)
}

func (h *AuthHandler) issue(c *gin.Context, fn issueFunc, rejected int) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	token, err := fn(c.Request.Context(), req.Login, req.Password)
	switch {
	case err == nil:
		middleware.SetAuthCookie(c, token)
		c.Status(http.StatusOK)
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.AbortWithStatusJSON(rejected, dto.ErrorResponse{Error: err.Error()})
	default:
		writeError(c, err)
	}
}
