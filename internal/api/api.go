package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insights-server/internal/auth"
	metricsHandler "insights-server/internal/metrics/handler"
	"insights-server/internal/observability"
)

type API struct {
	router         *gin.RouterGroup
	authenticator  auth.Authenticator
	metricsHandler metricsHandler.Handler
}

func New(router *gin.RouterGroup, authenticator auth.Authenticator, metricsHandler metricsHandler.Handler) API {
	return API{
		router:         router,
		authenticator:  authenticator,
		metricsHandler: metricsHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", observability.MetricsHandler())

	apiGroup := a.router.Group("/api")
	protectedGroup := apiGroup.Group("/protected", a.authenticator.HandleJWTMiddleware)
	{
		metricsGroup := protectedGroup.Group("/orgs/:organization_id/metrics")
		metricsGroup.GET("/totals", a.metricsHandler.HandleGetTotals)
		metricsGroup.GET("/daily", a.metricsHandler.HandleGetDailyBreakdown)
		metricsGroup.GET("/week-over-week", a.metricsHandler.HandleGetWeekOverWeek)
		metricsGroup.GET("/funnel", a.metricsHandler.HandleGetFunnelBreakdown)
		metricsGroup.GET("/ranking", a.metricsHandler.HandleGetCampaignRanking)
		metricsGroup.GET("/sales-performance", a.metricsHandler.HandleGetSalesPerformance)
		metricsGroup.GET("/activity", a.metricsHandler.HandleGetActivityBreakdown)
		metricsGroup.GET("/loss-reasons", a.metricsHandler.HandleGetLossReasons)
		metricsGroup.GET("/pipeline", a.metricsHandler.HandleGetPipelineSnapshot)
		metricsGroup.GET("/filters", a.metricsHandler.HandleGetFilterOptions)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
