package services

import (
	"errors"
	"testing"

	"MatZipLog/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanTabVisitsSkipsMissingTabs(t *testing.T) {
	links := map[string]string{
		"홈":  "/restaurant/1234/home",
		"메뉴": "/restaurant/1234/menu",
		"정보": "/restaurant/1234/information",
		// 소식 tab absent: no navigation may be planned for it.
	}
	visits := planTabVisits(links)

	require.Len(t, visits, 2)
	assert.Equal(t, "menu", visits[0].key)
	assert.Equal(t, "https://pcmap.place.naver.com/restaurant/1234/menu", visits[0].url)
	assert.False(t, visits[0].expandHours)

	assert.Equal(t, "info", visits[1].key)
	assert.True(t, visits[1].expandHours)
	assert.Equal(t, 3, visits[1].expandTries)
}

func TestPlanTabVisitsEmptyLinks(t *testing.T) {
	assert.Empty(t, planTabVisits(map[string]string{}))
	assert.Empty(t, planTabVisits(map[string]string{"홈": "/home"}))
}

func TestAbsoluteTabURL(t *testing.T) {
	assert.Equal(t, "https://pcmap.place.naver.com/restaurant/1/menu", absoluteTabURL("/restaurant/1/menu"))
	assert.Equal(t, "https://pcmap.place.naver.com/a?b=c", absoluteTabURL("/a?b=c"))
	// Absolute hrefs pass through untouched.
	assert.Equal(t, "https://other.example/x", absoluteTabURL("https://other.example/x"))
}

func TestTranslateLaunchError(t *testing.T) {
	launchErr := translateLaunchError(errors.New(`exec: "google-chrome": executable file not found in $PATH`))
	assert.True(t, utils.IsKind(launchErr, utils.KindEnvironment))

	navErr := translateLaunchError(errors.New("net::ERR_NAME_NOT_RESOLVED"))
	assert.False(t, utils.IsKind(navErr, utils.KindEnvironment))
	assert.Contains(t, navErr.Error(), "페이지 이동에 실패했습니다")
}
