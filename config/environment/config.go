package environment

import (
	"os"
	"strconv"
)

func GetOpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// GetCrawlTimeoutMS returns the per-navigation timeout for place crawls.
func GetCrawlTimeoutMS() int {
	if v, err := strconv.Atoi(os.Getenv("CRAWL_TIMEOUT_MS")); err == nil && v > 0 {
		return v
	}
	return 30000
}

// GetCrawlHeadless defaults to headless browsing; set CRAWL_HEADLESS=false to
// watch the crawl locally.
func GetCrawlHeadless() bool {
	if v, err := strconv.ParseBool(os.Getenv("CRAWL_HEADLESS")); err == nil {
		return v
	}
	return true
}

func GetOpenAIModel() string {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o"
	}
	return model
}

func GetOpenAITemperature() float32 {
	if v, err := strconv.ParseFloat(os.Getenv("OPENAI_TEMPERATURE"), 32); err == nil {
		return float32(v)
	}
	return 0.7
}
