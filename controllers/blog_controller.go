package controllers

import (
	"net/http"

	"MatZipLog/services"
	"MatZipLog/utils"

	"github.com/gin-gonic/gin"
)

type BlogController struct {
	BlogService *services.BlogService
}

func NewBlogController() *BlogController {
	return &BlogController{
		BlogService: services.NewBlogService(),
	}
}

// PromptRequest is stage 1: blog input fields to a writing prompt.
type PromptRequest struct {
	Fields      map[string]string `json:"fields" binding:"required"`
	Model       string            `json:"model"`
	Temperature float32           `json:"temperature"`
}

// PostRequest is stage 2: a (possibly edited) prompt to a markdown post.
type PostRequest struct {
	Prompt      string  `json:"prompt" binding:"required"`
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
}

// CommentsRequest is stage 3: a finished post to reader comments.
type CommentsRequest struct {
	BlogMarkdown string  `json:"blog_markdown" binding:"required"`
	Model        string  `json:"model"`
	Temperature  float32 `json:"temperature"`
}

func (ctrl *BlogController) GeneratePrompt(c *gin.Context) {
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	prompt, err := ctrl.BlogService.GeneratePrompt(c.Request.Context(), req.Fields, req.Model, req.Temperature)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "프롬프트 생성 완료", gin.H{"prompt": prompt})
}

func (ctrl *BlogController) GeneratePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	blog, err := ctrl.BlogService.GenerateBlog(c.Request.Context(), req.Prompt, req.Model, req.Temperature)
	if err != nil {
		c.Error(err)
		return
	}

	total, nonSpace := utils.CountChars(blog)
	utils.SuccessResponse(c, http.StatusOK, "블로그 생성 완료", gin.H{
		"blog_markdown":   blog,
		"total_chars":     total,
		"non_space_chars": nonSpace,
	})
}

func (ctrl *BlogController) GenerateComments(c *gin.Context) {
	var req CommentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	comments, err := ctrl.BlogService.GenerateComments(c.Request.Context(), req.BlogMarkdown, req.Model, req.Temperature)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "댓글 생성 완료", gin.H{"comments": comments})
}
