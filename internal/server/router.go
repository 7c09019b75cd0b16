package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) SetUpRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestId())
	router.Use(Logger())
	router.Use(gin.Recovery())

	corsConf := cors.DefaultConfig()
	if len(s.conf.CORS.AllowOrigins) == 1 && s.conf.CORS.AllowOrigins[0] == "*" {
		corsConf.AllowAllOrigins = true
	} else {
		corsConf.AllowOrigins = s.conf.CORS.AllowOrigins
	}
	router.Use(cors.New(corsConf))

	pprof.Register(router)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "ok",
		})
	})

	// Serve the dashboard build output; unknown non-API paths fall back
	// to index.html for client-side routing.
	router.Static("/static", s.conf.StaticDir+"/static")
	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{"error": "not found"})
			return
		}
		c.File(s.conf.StaticDir + "/index.html")
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	apiV1 := router.Group("/api/v1")
	s.SetUpApiV1Router(apiV1)

	return router
}

func (s *Server) SetUpApiV1Router(apiV1 *gin.RouterGroup) {
	apiV1.GET("/cards", s.handleCards)
	apiV1.GET("/chart", s.handleChart)
	apiV1.GET("/datatable", s.handleDataTable)

	charts := apiV1.Group("/charts")
	charts.GET("/avg-salary-trend", s.handleAvgSalaryTrend)
	charts.GET("/schedule-types", s.handleScheduleTypes)
	charts.GET("/top-companies", s.handleTopCompanies)
	charts.GET("/top-locations", s.handleTopLocations)
	charts.GET("/top-titles-short", s.handleTopTitlesShort)
	charts.GET("/salary-rate", s.handleSalaryRate)
	charts.GET("/wfh-distribution", s.handleWfhDistribution)
	charts.GET("/health-insurance", s.handleHealthInsurance)
	charts.GET("/no-degree", s.handleNoDegree)
	charts.GET("/schedule-wfh-split", s.handleScheduleWfhSplit)
}
