package services

import (
	"MatZipLog/utils"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// Ordered placeId patterns; each targets a distinct Naver map URL shape.
var placeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/entry/place/(\d+)`),
	regexp.MustCompile(`/place/(\d+)`),
	regexp.MustCompile(`placeId=(\d+)`),
}

// ExtractPlaceID resolves a Naver map URL (canonical or naver.me short link)
// to its numeric placeId. Short links are expanded with a single bounded HTTP
// request before pattern matching.
func (s *NaverMapService) ExtractPlaceID(mapURL string) (string, error) {
	raw := strings.TrimSpace(mapURL)
	if raw == "" {
		return "", utils.NewValidationError("네이버 지도 URL이 비어 있습니다.")
	}

	if parsed, err := url.Parse(raw); err == nil && strings.Contains(strings.ToLower(parsed.Host), "naver.me") {
		expanded, err := s.expandShortURL(raw)
		if err != nil {
			return "", fmt.Errorf("단축 URL 확장에 실패했습니다: %w", err)
		}
		raw = expanded
	}

	for _, pattern := range placeIDPatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			return m[1], nil
		}
	}

	return "", utils.NewNotFoundError("URL에서 placeId를 찾지 못했습니다.")
}

// expandShortURL follows the short link's redirect and returns the final URL.
func (s *NaverMapService) expandShortURL(shortURL string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, shortURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", crawlUserAgent)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}
