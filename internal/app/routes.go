package app

import (
	"github.com/vijaynvb/TodoMinimalAPI/internal/auth"
	"github.com/vijaynvb/TodoMinimalAPI/internal/cache"
	"github.com/vijaynvb/TodoMinimalAPI/internal/config"
	"github.com/vijaynvb/TodoMinimalAPI/internal/handlers"
	"github.com/vijaynvb/TodoMinimalAPI/internal/repo"
	"github.com/vijaynvb/TodoMinimalAPI/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// NewRouter builds the full engine with the middleware chain and all
// routes. Tests call it directly with in-memory repos and a nil cache.
func NewRouter(cfg config.Config, log *logrus.Logger, todos repo.TodoRepo, users repo.UserRepo, tc *cache.TodoCache) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(newCORS(cfg.CORS))

	// Ops surface, outside the API key gate.
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	// Every API route sits behind the pre-shared key.
	api := r.Group("", auth.RequireAPIKey(cfg.Auth.APIKey))

	issuer := auth.NewTokenIssuer(cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.Key)
	userSvc := service.NewUserService(users)
	authHandler := handlers.NewAuthHandler(userSvc, issuer)
	api.POST("/signup", authHandler.SignUp)
	api.POST("/login", authHandler.Login)

	todoSvc := service.NewTodoService(todos, tc)
	todoHandler := handlers.NewTodoHandler(todoSvc)
	// Listing additionally requires an authenticated user.
	api.GET("/todos", auth.RequireBearer(issuer), todoHandler.List)
	api.GET("/todos/:id", todoHandler.GetByID)
	api.POST("/todos", todoHandler.Create)
	api.PUT("/todos/:id", todoHandler.Update)
	api.DELETE("/todos/:id", todoHandler.Delete)

	return r
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
