package services

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"MatZipLog/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

var (
	multiNewlineRegex = regexp.MustCompile(`\n{3,}`)
	badgeCountRegex   = regexp.MustCompile(`\d+$`)
)

// NormalizeText collapses runs of 3+ newlines down to a blank line and trims
// the result.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", "\n")
	text = multiNewlineRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// stripBadgeCount removes the trailing counter Naver appends to section
// headers ("메뉴32" -> "메뉴").
func stripBadgeCount(title string) string {
	return strings.TrimSpace(badgeCountRegex.ReplaceAllString(strings.TrimSpace(title), ""))
}

// actionTokens are the labels of the panel's action-button bar; a block that
// contains several of them is navigation chrome, not content.
var actionTokens = []string{"출발", "도착", "저장", "거리뷰", "공유"}

// noisePredicate is one named rule of the noise classifier. The rules are
// hard-coded phrase lists tied to the target site's current UI copy, so they
// live here as data rather than inside the extraction flow.
type noisePredicate struct {
	name  string
	match func(text string) bool
}

var noisePredicates = []noisePredicate{
	{
		name: "subscribe-alert",
		match: func(text string) bool {
			return strings.Contains(text, "알림받기") &&
				strings.Contains(text, "출발") &&
				strings.Contains(text, "도착")
		},
	},
	{
		name: "action-bar",
		match: func(text string) bool {
			hits := 0
			for _, token := range actionTokens {
				if strings.Contains(text, token) {
					hits++
				}
			}
			return hits >= 3
		},
	},
	{
		name: "page-close",
		match: func(text string) bool {
			return strings.Contains(text, "페이지 닫기")
		},
	},
	{
		name: "edit-suggestion",
		match: func(text string) bool {
			return strings.Contains(text, "정보 수정 제안하기")
		},
	},
	{
		name: "menu-image-viewer",
		match: func(text string) bool {
			return strings.HasPrefix(text, "메뉴판 이미지로 보기")
		},
	},
	{
		name: "too-short",
		match: func(text string) bool {
			return utf8.RuneCountInString(text) < 10
		},
	},
}

// isNoiseBlock reports whether a normalized block matches any classifier rule.
func isNoiseBlock(text string) bool {
	for _, predicate := range noisePredicates {
		if predicate.match(text) {
			return true
		}
	}
	return false
}

// CleanSectionBlocks filters and normalizes the raw panel blocks into one text
// body. The section header is re-prepended only when the block text does not
// already begin with it.
func CleanSectionBlocks(blocks []models.SectionBlock) string {
	var cleaned []string
	for _, block := range blocks {
		title := stripBadgeCount(block.Title)
		text := NormalizeText(block.Text)
		if text == "" || isNoiseBlock(text) {
			continue
		}

		if title != "" && !strings.HasPrefix(text, title) {
			cleaned = append(cleaned, title+"\n"+text)
		} else {
			cleaned = append(cleaned, text)
		}
	}
	return NormalizeText(strings.Join(cleaned, "\n\n"))
}

// Decreasingly specific containers for the whole-panel fallback.
var panelFallbackSelectors = []string{
	".place_section",
	".place_section_content",
	"#app-root",
	"#_pcmap_list_scroll_container",
	"body",
}

// extractTabText pulls the structured section blocks out of the frame and
// cleans them; when nothing useful survives it falls back to whole-panel text.
func (s *NaverMapService) extractTabText(frameCtx context.Context) string {
	var blocks []models.SectionBlock
	if err := chromedp.Run(frameCtx, chromedp.Evaluate(sectionBlocksScript, &blocks)); err != nil {
		blocks = nil
	}

	if text := CleanSectionBlocks(blocks); text != "" {
		return text
	}
	return s.extractVisiblePanelText(frameCtx)
}

// extractVisiblePanelText renders the frame's HTML and walks a selector
// cascade, keeping the longest non-empty text it finds. Last-resort lossy
// extraction for panels whose section markup changed under us.
func (s *NaverMapService) extractVisiblePanelText(frameCtx context.Context) string {
	var html string
	if err := chromedp.Run(frameCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return ""
	}
	return longestPanelText(html)
}

// longestPanelText walks the fallback cascade over the rendered HTML and
// keeps the longest non-empty text found.
func longestPanelText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	best := ""
	for _, selector := range panelFallbackSelectors {
		doc.Find(selector).Each(func(_ int, node *goquery.Selection) {
			text := strings.TrimSpace(node.Text())
			if len(text) > len(best) {
				best = text
			}
		})
	}
	return NormalizeText(best)
}
