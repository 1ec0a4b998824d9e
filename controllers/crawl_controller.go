package controllers

import (
	"net/http"

	"MatZipLog/config/environment"
	"MatZipLog/services"
	"MatZipLog/utils"

	"github.com/gin-gonic/gin"
)

type CrawlController struct{}

func NewCrawlController() *CrawlController {
	return &CrawlController{}
}

// CrawlRequest carries the place URL plus optional per-request overrides of
// the navigation timeout and headless mode.
type CrawlRequest struct {
	MapURL    string `json:"map_url" binding:"required"`
	TimeoutMS int    `json:"timeout_ms"`
	Headless  *bool  `json:"headless"`
}

// MergeRequest additionally carries the user's partially filled blog fields.
type MergeRequest struct {
	MapURL    string            `json:"map_url" binding:"required"`
	Fields    map[string]string `json:"fields"`
	TimeoutMS int               `json:"timeout_ms"`
	Headless  *bool             `json:"headless"`
}

func newCrawlerService(timeoutMS int, headless *bool) *services.NaverMapService {
	if timeoutMS <= 0 {
		timeoutMS = environment.GetCrawlTimeoutMS()
	}
	headlessMode := environment.GetCrawlHeadless()
	if headless != nil {
		headlessMode = *headless
	}
	return services.NewNaverMapService(timeoutMS, headlessMode)
}

// CrawlPlace runs one place crawl and returns the raw tab texts.
func (ctrl *CrawlController) CrawlPlace(c *gin.Context) {
	var req CrawlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	crawler := newCrawlerService(req.TimeoutMS, req.Headless)
	crawled, err := crawler.CrawlPlaceTabs(req.MapURL)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "탭 크롤링 완료: placeId "+crawled.PlaceID, crawled)
}

// CrawlAndMerge crawls the place and backfills the caller's blog fields with
// the result, returning the merged field map alongside the raw crawl.
func (ctrl *CrawlController) CrawlAndMerge(c *gin.Context) {
	var req MergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}
	if req.Fields == nil {
		req.Fields = map[string]string{}
	}

	crawler := newCrawlerService(req.TimeoutMS, req.Headless)
	crawled, err := crawler.CrawlPlaceTabs(req.MapURL)
	if err != nil {
		c.Error(err)
		return
	}

	merged := services.MergeBlogInputWithCrawl(req.Fields, crawled)
	utils.SuccessResponse(c, http.StatusOK, "탭 크롤링 완료: placeId "+crawled.PlaceID, gin.H{
		"crawled": crawled,
		"fields":  merged,
	})
}
