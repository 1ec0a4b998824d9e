package handlers

import (
	"MatZipLog/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterCrawlerRoutes sets up the place-crawler routes
func RegisterCrawlerRoutes(router *gin.RouterGroup, crawlController *controllers.CrawlController) {
	crawlerGroup := router.Group("/crawler")
	{
		crawlerGroup.POST("/place", crawlController.CrawlPlace)
		crawlerGroup.POST("/merge", crawlController.CrawlAndMerge)
	}
}
