package routes

import (
	"cpq_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTariffs  = "/tariffs"
	PathSessions = "/sessions"
)

func addTariffRoutes(rg *gin.RouterGroup, tariffHandler *handlers.TariffHandler) {
	rg.GET(PathTariffs, tariffHandler.GetTariffs)
}

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.StartSession)
		sessions.GET("/:id", sessionHandler.GetSession)
		sessions.PATCH("/:id/form", sessionHandler.UpdateForm)
		sessions.DELETE("/:id/form", sessionHandler.ClearForm)
		sessions.PUT("/:id/overrides", sessionHandler.UpdateOverrides)
		sessions.POST("/:id/submit", sessionHandler.Submit)
		sessions.POST("/:id/cancel", sessionHandler.Cancel)
		sessions.POST("/:id/retry", sessionHandler.Retry)
		sessions.POST("/:id/events/pdf-click", sessionHandler.TrackPDFClick)
	}
}
