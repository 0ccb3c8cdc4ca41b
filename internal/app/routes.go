package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	"todoback/internal/apperr"
	"todoback/internal/config"
	"todoback/internal/handlers"
	"todoback/internal/resp"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, h *handlers.TodoHandler) {
	r.GET("/", rootHandler())
	r.GET("/health", healthHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api")
	registerTodoRoutes(api, h)
	registerErrorRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperr.NotFound(fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path)))
		c.Abort()
	})
}

func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp.OK(c, gin.H{"message": "Backend API is running!"}, "")
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp.OK(c, gin.H{"status": "OK", "env": cfg.App.Env, "version": cfg.App.Version}, "")
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	api.GET("/todos", h.List)
	api.GET("/todos/:id", h.GetByID)
	api.POST("/todos", h.Create)
	api.PUT("/todos/:id", h.Update)
	api.DELETE("/todos/:id", h.Delete)
	api.PATCH("/todos/:id/toggle", h.Toggle)
}

func registerErrorRoutes(r *gin.Engine) {
	e := r.Group("/error")
	e.GET("/status", handlers.ErrorStatus)
	e.GET("/500", handlers.TriggerError)
	e.GET("/400", handlers.TriggerValidationError)
	e.GET("/401", handlers.TriggerUnauthorizedError)
	e.GET("/403", handlers.TriggerForbiddenError)
	e.GET("/408", handlers.TriggerTimeoutError)
	e.GET("/async", handlers.TriggerAsyncError)
	e.GET("/database", handlers.TriggerDatabaseError)
}
