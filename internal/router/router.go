package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"docanalyzer/internal/handler"
	"docanalyzer/internal/middleware"
	"docanalyzer/internal/service"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Info      *handler.InfoHandler
	Health    *handler.HealthHandler
	Session   *handler.SessionHandler
	Workspace *handler.WorkspaceHandler
	History   *handler.HistoryHandler
	Export    *handler.ExportHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(sessionSvc service.SessionService, h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	r.GET("/", h.Info.Root)
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/sessions", h.Session.Start)

	// Session-scoped routes - require a valid session token
	protected := v1.Group("")
	protected.Use(middleware.SessionMiddleware(sessionSvc))

	protected.DELETE("/sessions", h.Session.End)

	workspace := protected.Group("/workspace")
	workspace.GET("", h.Workspace.State)
	workspace.PUT("/file", h.Workspace.SelectFile)
	workspace.DELETE("/file", h.Workspace.RemoveFile)
	workspace.POST("/analyze", h.Workspace.Analyze)

	history := protected.Group("/history")
	history.GET("", h.History.List)
	history.GET("/selected", h.History.Selected)
	history.GET("/:id", h.History.GetByID)
	history.PUT("/:id/select", h.History.Select)

	export := protected.Group("/export")
	export.GET("/text", h.Export.Text)
	export.GET("/pdf", h.Export.PDF)
	export.GET("/history.csv", h.Export.HistoryCSV)
	export.GET("/history.xlsx", h.Export.HistoryXLSX)

	return r
}
