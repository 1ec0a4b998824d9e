package handlers

import (
	"MatZipLog/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterBlogRoutes sets up the three-stage blog generation routes
func RegisterBlogRoutes(router *gin.RouterGroup, blogController *controllers.BlogController) {
	blogGroup := router.Group("/blog")
	{
		blogGroup.POST("/prompt", blogController.GeneratePrompt)
		blogGroup.POST("/post", blogController.GeneratePost)
		blogGroup.POST("/comments", blogController.GenerateComments)
	}
}
