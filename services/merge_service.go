package services

import (
	"strings"

	"MatZipLog/models"
)

// Boilerplate lines skipped when guessing the place name from home-tab text.
const searchBoilerplate = "네이버지도 검색"

var tabLabelWords = map[string]struct{}{
	"홈": {}, "메뉴": {}, "정보": {}, "소식": {}, "리뷰": {}, "사진": {},
}

// guessPlaceName returns the first home-text line that is neither boilerplate
// nor a bare tab label.
func guessPlaceName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == searchBoilerplate {
			continue
		}
		if _, isLabel := tabLabelWords[line]; isLabel {
			continue
		}
		return line
	}
	return ""
}

// guessBusinessHours collects up to 3 lines that look like opening-hours
// entries and joins them with " / ".
func guessBusinessHours(text string) string {
	var candidates []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "영업") || strings.Contains(line, "라스트오더") {
			candidates = append(candidates, line)
		}
		if len(candidates) == 3 {
			break
		}
	}
	return strings.TrimSpace(strings.Join(candidates, " / "))
}

// Keywords marking parking/amenity tip lines in the info tab.
var tipKeywords = []string{"주차", "편의", "무선 인터넷", "포장"}

func guessParkingOrTips(infoText string) string {
	var tips []string
	for _, line := range strings.Split(infoText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, keyword := range tipKeywords {
			if strings.Contains(line, keyword) {
				tips = append(tips, line)
				break
			}
		}
		if len(tips) == 6 {
			break
		}
	}
	return strings.Join(tips, "\n")
}

// MergeBlogInputWithCrawl backfills the empty fields of the user's blog input
// from a crawl result. Non-empty fields are never overwritten; location_info
// is the one cumulative field, always receiving a map-link line (unless the
// identical line is already its last line). Unrecognized keys pass through
// untouched. Pure function: the input map is copied, not mutated.
func MergeBlogInputWithCrawl(input map[string]string, crawled *models.CrawledPlaceData) map[string]string {
	out := make(map[string]string, len(input))
	for key, value := range input {
		out[key] = value
	}

	if name := guessPlaceName(crawled.HomeText); name != "" && out[models.FieldPlaceName] == "" {
		out[models.FieldPlaceName] = name
	}

	if hours := guessBusinessHours(crawled.HomeText + "\n" + crawled.InfoText); hours != "" && out[models.FieldBusinessHours] == "" {
		out[models.FieldBusinessHours] = hours
	}

	mapLink := "지도 링크: " + crawled.SourceURL
	switch existing := strings.TrimSpace(out[models.FieldLocationInfo]); {
	case existing == "":
		out[models.FieldLocationInfo] = mapLink
	case !strings.HasSuffix(existing, mapLink):
		out[models.FieldLocationInfo] = existing + "\n" + mapLink
	default:
		out[models.FieldLocationInfo] = existing
	}

	backfill := map[string]string{
		models.FieldHomeTabInfo: crawled.HomeText,
		models.FieldMenuTabInfo: crawled.MenuText,
		models.FieldInfoTabInfo: crawled.InfoText,
		models.FieldNewsTabInfo: crawled.NewsText,
	}
	for key, value := range backfill {
		if out[key] == "" {
			out[key] = value
		}
	}

	if out[models.FieldParkingOrTips] == "" {
		if tips := guessParkingOrTips(crawled.InfoText); tips != "" {
			out[models.FieldParkingOrTips] = tips
		}
	}

	if out[models.FieldTargetKeyword] == "" {
		out[models.FieldTargetKeyword] = out[models.FieldPlaceName]
	}

	return out
}
