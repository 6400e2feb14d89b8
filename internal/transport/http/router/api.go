package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-task-api/internal/core/auth"
	"go-task-api/internal/service"
	"go-task-api/internal/transport/http/handler"
	mdw "go-task-api/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, authSvc *service.AuthService, taskSvc *service.TaskService) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 公共：注册/登录
	authH := handler.NewAuthHandler(authSvc)
	api.POST("/auth/signup", authH.SignUp)
	api.POST("/auth/signin", authH.SignIn)

	// 任务全部在鉴权分组下，owner 由 Auth 解析出的用户决定
	taskH := handler.NewTaskHandler(taskSvc)
	tasks := api.Group("/tasks")
	tasks.Use(mdw.Auth(jwter, authSvc))
	tasks.GET("", taskH.List)
	tasks.POST("", taskH.Create)
	tasks.GET("/:id", taskH.Get)
	tasks.DELETE("/:id", taskH.Delete)
	tasks.PATCH("/:id/status", taskH.UpdateStatus)

	return r
}
