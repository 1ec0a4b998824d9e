package services

import (
	"testing"

	"MatZipLog/models"

	"github.com/stretchr/testify/assert"
)

func sampleCrawl() *models.CrawledPlaceData {
	return &models.CrawledPlaceData{
		PlaceID:   "1234567890",
		SourceURL: "https://map.naver.com/p/entry/place/1234567890?placePath=%2Fhome",
		HomeText:  "네이버지도 검색\n홈\n메뉴\n연남수제비\n영업 중 · 21:00에 영업 종료\n라스트오더 20:30",
		MenuText:  "메뉴\n김치수제비 9,000원",
		InfoText:  "주차 가능\n무선 인터넷 제공\n포장 가능\n매장 내 취식 가능",
		NewsText:  "",
	}
}

func TestMergeBackfillsEmptyFields(t *testing.T) {
	merged := MergeBlogInputWithCrawl(map[string]string{}, sampleCrawl())

	assert.Equal(t, "연남수제비", merged[models.FieldPlaceName])
	assert.Equal(t, "연남수제비", merged[models.FieldTargetKeyword])
	assert.Equal(t, "영업 중 · 21:00에 영업 종료 / 라스트오더 20:30", merged[models.FieldBusinessHours])
	assert.Equal(t, "메뉴\n김치수제비 9,000원", merged[models.FieldMenuTabInfo])
	assert.Equal(t, "", merged[models.FieldNewsTabInfo])
	assert.Equal(t, "주차 가능\n무선 인터넷 제공\n포장 가능", merged[models.FieldParkingOrTips])
}

func TestMergeNeverOverwritesExistingValues(t *testing.T) {
	input := map[string]string{
		models.FieldPlaceName:     "내가 정한 이름",
		models.FieldBusinessHours: "직접 쓴 영업시간",
		models.FieldMenuTabInfo:   "직접 쓴 메뉴",
		models.FieldParkingOrTips: "직접 쓴 팁",
		models.FieldTargetKeyword: "내 키워드",
	}
	merged := MergeBlogInputWithCrawl(input, sampleCrawl())

	assert.Equal(t, "내가 정한 이름", merged[models.FieldPlaceName])
	assert.Equal(t, "직접 쓴 영업시간", merged[models.FieldBusinessHours])
	assert.Equal(t, "직접 쓴 메뉴", merged[models.FieldMenuTabInfo])
	assert.Equal(t, "직접 쓴 팁", merged[models.FieldParkingOrTips])
	assert.Equal(t, "내 키워드", merged[models.FieldTargetKeyword])
}

func TestMergeAppendsMapLinkToLocationInfo(t *testing.T) {
	crawled := sampleCrawl()
	crawled.SourceURL = "https://x/y"

	merged := MergeBlogInputWithCrawl(map[string]string{models.FieldLocationInfo: "Seoul"}, crawled)
	assert.Equal(t, "Seoul\n지도 링크: https://x/y", merged[models.FieldLocationInfo])

	empty := MergeBlogInputWithCrawl(map[string]string{}, crawled)
	assert.Equal(t, "지도 링크: https://x/y", empty[models.FieldLocationInfo])
}

func TestMergeIsIdempotent(t *testing.T) {
	crawled := sampleCrawl()
	once := MergeBlogInputWithCrawl(map[string]string{}, crawled)
	twice := MergeBlogInputWithCrawl(once, crawled)

	// The map-link line is not stacked on repeated merges of the same crawl.
	assert.Equal(t, once, twice)
}

func TestMergePassesThroughUnknownFields(t *testing.T) {
	input := map[string]string{"my_custom_note": "그대로 유지"}
	merged := MergeBlogInputWithCrawl(input, sampleCrawl())

	assert.Equal(t, "그대로 유지", merged["my_custom_note"])
	// Input map itself is untouched.
	assert.Equal(t, map[string]string{"my_custom_note": "그대로 유지"}, input)
}

func TestGuessPlaceName(t *testing.T) {
	assert.Equal(t, "연남수제비", guessPlaceName("네이버지도 검색\n홈\n메뉴\n정보\n연남수제비"))
	assert.Equal(t, "", guessPlaceName("홈\n메뉴\n소식\n리뷰\n사진"))
	assert.Equal(t, "", guessPlaceName(""))
}

func TestGuessBusinessHoursCapsAtThree(t *testing.T) {
	text := "영업 중\n라스트오더 20:30\n영업시간 안내\n영업 종료 21:00"
	assert.Equal(t, "영업 중 / 라스트오더 20:30 / 영업시간 안내", guessBusinessHours(text))
	assert.Equal(t, "", guessBusinessHours("아무 관련 없는 줄"))
}

func TestGuessParkingOrTipsCapsAtSix(t *testing.T) {
	text := "주차 1\n주차 2\n편의 3\n포장 4\n무선 인터넷 5\n주차 6\n주차 7"
	got := guessParkingOrTips(text)
	assert.Equal(t, "주차 1\n주차 2\n편의 3\n포장 4\n무선 인터넷 5\n주차 6", got)
}
