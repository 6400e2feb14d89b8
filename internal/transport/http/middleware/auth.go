package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-task-api/internal/core/auth"
	"go-task-api/internal/domain"
	"go-task-api/internal/service"
	resp "go-task-api/internal/transport/http/response"
)

const keyUser = "user"

// Auth 验签之后还要确认 claims 指向的用户仍然存在，
// 下游 handler 拿到的永远是已落库的 User，不是裸用户名
func Auth(j *auth.JWTer, svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		u, err := svc.ResolveUser(c.Request.Context(), claims)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthorized"))
				return
			}
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeServerError, "internal error"))
			return
		}
		c.Set(keyUser, u)
		c.Next()
	}
}

// CurrentUser 只有挂在 Auth 之后的路由才拿得到
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(keyUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
