package route

import (
	"MatZipLog/controllers"
	"MatZipLog/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	crawlController := controllers.NewCrawlController()
	blogController := controllers.NewBlogController()

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterCrawlerRoutes(v1Routes, crawlController)
		handlers.RegisterBlogRoutes(v1Routes, blogController)
	}
}
