package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/domain/profile"
	"fixdesk/internal/infrastructure/auth"
	"fixdesk/internal/shared/constants"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

// AuthMiddleware gates every /api route. The session token comes from the
// identity provider (cookie or Bearer header); the profile row decides
// whether the account may use the application and whether it is an admin.
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	profileRepo profile.ProfileRepository
	cookieName  string
	logger      logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, profileRepo profile.ProfileRepository, cookieName string, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		profileRepo: profileRepo,
		cookieName:  cookieName,
		logger:      logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "No autenticado")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			if errors.ShouldLogAuthError(err) {
				m.logger.Warnw("token verification failed", "error", err)
			}
			utils.ErrorResponse(c, http.StatusUnauthorized, "Sesión inválida o expirada")
			c.Abort()
			return
		}

		p, err := m.profileRepo.FindByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			m.logger.Errorw("profile lookup failed", "email", claims.Email, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
			c.Abort()
			return
		}
		if p == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Usuario no registrado")
			c.Abort()
			return
		}
		if !p.IsActive() {
			utils.ErrorResponse(c, http.StatusForbidden, "Usuario inactivo")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, p.ID())
		c.Set(constants.ContextKeyUserEmail, p.Email())
		c.Set(constants.ContextKeyUserRole, p.Role())
		c.Set(constants.ContextKeyIsAdmin, p.IsAdmin())

		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if token := utils.GetTokenFromCookie(c, m.cookieName); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
