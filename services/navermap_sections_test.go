package services

import (
	"testing"

	"MatZipLog/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "a\n\nb", NormalizeText("a\n\n\n\n\nb"))
	assert.Equal(t, "a\n\nb", NormalizeText("\r\na\r\r\rb\r\n"))
	assert.Equal(t, "", NormalizeText("  \n \n "))
}

func TestStripBadgeCount(t *testing.T) {
	assert.Equal(t, "메뉴", stripBadgeCount("메뉴32"))
	assert.Equal(t, "리뷰", stripBadgeCount(" 리뷰128 "))
	assert.Equal(t, "영업정보", stripBadgeCount("영업정보"))
}

func TestIsNoiseBlock(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		noise bool
	}{
		{"action bar with subscribe", "출발 도착 저장 거리뷰 공유 알림받기", true},
		{"three action tokens", "길찾기는 출발 버튼, 도착 버튼, 저장 버튼을 누르세요", true},
		{"too short", "짧다", true},
		{"page close", "이 페이지 닫기 버튼을 눌러 주세요", true},
		{"edit suggestion", "잘못된 정보가 있다면 정보 수정 제안하기 기능을 이용하세요", true},
		{"menu image viewer prefix", "메뉴판 이미지로 보기 버튼", true},
		{"business hours content", "영업시간\n매일 11:00-21:00 라스트오더 20:30", false},
		{"plain description", "조용한 골목에 있는 수제비 전문점입니다", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.noise, isNoiseBlock(tc.text))
		})
	}
}

func TestCleanSectionBlocksFiltersNoise(t *testing.T) {
	blocks := []models.SectionBlock{
		{Title: "", Text: "출발 도착 저장 거리뷰 공유 알림받기"},
		{Title: "", Text: "짧다"},
		{Title: "", Text: "영업시간\n매일 11:00-21:00 라스트오더 20:30"},
	}
	got := CleanSectionBlocks(blocks)
	assert.Equal(t, "영업시간\n매일 11:00-21:00 라스트오더 20:30", got)
}

func TestCleanSectionBlocksHeaderDeduplication(t *testing.T) {
	// Cleaned header is already the first line of the body: not re-prepended.
	dup := []models.SectionBlock{
		{Title: "메뉴2", Text: "메뉴\n김치수제비 9,000원\n들깨수제비 10,000원"},
	}
	assert.Equal(t, "메뉴\n김치수제비 9,000원\n들깨수제비 10,000원", CleanSectionBlocks(dup))

	// Body does not start with the header: header gets its own line.
	headed := []models.SectionBlock{
		{Title: "영업정보", Text: "매일 11:00 - 21:00 / 명절 당일 휴무"},
	}
	assert.Equal(t, "영업정보\n매일 11:00 - 21:00 / 명절 당일 휴무", CleanSectionBlocks(headed))
}

func TestCleanSectionBlocksJoinsWithBlankLine(t *testing.T) {
	blocks := []models.SectionBlock{
		{Title: "영업정보", Text: "매일 11:00 - 21:00 라스트오더 20:30"},
		{Title: "편의시설", Text: "주차 가능, 무선 인터넷 제공, 포장 가능"},
	}
	want := "영업정보\n매일 11:00 - 21:00 라스트오더 20:30\n\n편의시설\n주차 가능, 무선 인터넷 제공, 포장 가능"
	assert.Equal(t, want, CleanSectionBlocks(blocks))
}

func TestLongestPanelText(t *testing.T) {
	html := `<html><body>
		<div id="app-root">
			<div class="place_section">맛집 소개 글이 들어 있는 본문 영역입니다</div>
			<div class="place_section">짧음</div>
		</div>
	</body></html>`
	got := longestPanelText(html)
	assert.Contains(t, got, "맛집 소개 글이 들어 있는 본문 영역입니다")

	assert.Equal(t, "", longestPanelText("<html><body></body></html>"))
}
