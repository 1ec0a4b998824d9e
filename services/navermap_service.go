package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os/exec"
	"strings"
	"time"

	"MatZipLog/models"
	"MatZipLog/utils"

	"github.com/chromedp/chromedp"
)

const crawlUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"

const placeTabBaseURL = "https://pcmap.place.naver.com"

// Settle waits: the panel renders client-side after the load event, so each
// navigation is followed by a fixed pause instead of a readiness signal.
const (
	homeSettleWait = 3500 * time.Millisecond
	tabSettleWait  = 2200 * time.Millisecond
)

// NaverMapService drives one headless browser session per crawl of a Naver
// place page. Crawls are strictly sequential within a session; concurrent
// crawls each get their own browser.
type NaverMapService struct {
	HTTPClient *http.Client
	TimeoutMS  int
	Headless   bool

	envErr error
}

// NewNaverMapService builds the crawler with config defaults. The browser
// capability check runs once here; a host without a Chrome binary yields a
// service whose crawls fail fast with an environment error.
func NewNaverMapService(timeoutMS int, headless bool) *NaverMapService {
	return &NaverMapService{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		TimeoutMS:  timeoutMS,
		Headless:   headless,
		envErr:     lookupChromeExecutable(),
	}
}

// lookupChromeExecutable checks that some Chrome flavor is launchable before
// any session is created.
func lookupChromeExecutable() error {
	candidates := []string{
		"google-chrome",
		"google-chrome-stable",
		"chromium",
		"chromium-browser",
		"chrome",
		"headless-shell",
	}
	for _, name := range candidates {
		if _, err := exec.LookPath(name); err == nil {
			return nil
		}
	}
	return utils.NewEnvironmentError(
		"크롬 실행 파일을 찾지 못했습니다. Chrome 또는 Chromium을 설치한 뒤 서버를 재시작해 주세요.")
}

// tabVisit is one planned navigation for a non-home tab.
type tabVisit struct {
	key         string
	url         string
	expandHours bool
	expandTries int
}

// Non-home tabs in crawl order, with their panel labels.
var tabOrder = []struct {
	label string
	key   string
}{
	{"메뉴", "menu"},
	{"정보", "info"},
	{"소식", "news"},
}

// planTabVisits turns the discovered tab links into the navigations to run.
// Tabs the place does not expose are simply absent from the plan; their text
// stays empty and no navigation happens for them.
func planTabVisits(links map[string]string) []tabVisit {
	var visits []tabVisit
	for _, tab := range tabOrder {
		href := links[tab.label]
		if href == "" {
			continue
		}
		visits = append(visits, tabVisit{
			key:         tab.key,
			url:         absoluteTabURL(href),
			expandHours: tab.key == "info",
			expandTries: 3,
		})
	}
	return visits
}

// absoluteTabURL resolves a tab's relative href against the place panel host.
func absoluteTabURL(href string) string {
	base, err := url.Parse(placeTabBaseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// CrawlPlaceTabs collects the text of the home/menu/info/news tabs of one
// place. The browser session is torn down on every exit path.
func (s *NaverMapService) CrawlPlaceTabs(mapURL string) (*models.CrawledPlaceData, error) {
	if s.envErr != nil {
		return nil, s.envErr
	}

	placeID, err := s.ExtractPlaceID(mapURL)
	if err != nil {
		return nil, err
	}
	homeURL := fmt.Sprintf("https://map.naver.com/p/entry/place/%s?placePath=%%2Fhome", placeID)
	log.Printf("크롤링 시작: placeId=%s url=%s\n", placeID, homeURL)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.Headless),
		chromedp.Flag("lang", "ko-KR"),
		chromedp.UserAgent(crawlUserAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	texts := map[string]string{"home": "", "menu": "", "info": "", "news": ""}

	if err := s.navigate(browserCtx, homeURL, homeSettleWait); err != nil {
		return nil, translateLaunchError(err)
	}

	frameCtx, cancelFrame, found := s.locatePlaceFrame(browserCtx)
	if !found {
		return nil, utils.NewFrameNotFoundError("네이버 장소 패널 iframe을 찾지 못했습니다.")
	}

	tabLinks := s.discoverTabs(frameCtx)
	s.expandWithRetry(frameCtx, 4, 500*time.Millisecond)
	texts["home"] = s.extractTabText(frameCtx)
	cancelFrame()

	for _, visit := range planTabVisits(tabLinks) {
		if err := s.navigate(browserCtx, visit.url, tabSettleWait); err != nil {
			return nil, fmt.Errorf("%s 탭 이동에 실패했습니다: %w", visit.key, err)
		}

		// Fall back to the top-level page when the panel frame is not
		// re-found after the tab navigation.
		tabCtx := browserCtx
		cancelTab := context.CancelFunc(func() {})
		if frameCtx, cancelFrame, found := s.locatePlaceFrame(browserCtx); found {
			tabCtx, cancelTab = frameCtx, cancelFrame
		}

		if visit.expandHours {
			s.expandWithRetry(tabCtx, visit.expandTries, 400*time.Millisecond)
		}
		texts[visit.key] = s.extractTabText(tabCtx)
		cancelTab()
	}

	log.Printf("크롤링 완료: placeId=%s (home=%d자 menu=%d자 info=%d자 news=%d자)\n",
		placeID, len(texts["home"]), len(texts["menu"]), len(texts["info"]), len(texts["news"]))

	return &models.CrawledPlaceData{
		PlaceID:   placeID,
		SourceURL: homeURL,
		HomeText:  texts["home"],
		MenuText:  texts["menu"],
		InfoText:  texts["info"],
		NewsText:  texts["news"],
	}, nil
}

// navigate loads a URL under the navigation timeout, then sits out the settle
// wait so the client-side panel can render.
func (s *NaverMapService) navigate(ctx context.Context, pageURL string, settle time.Duration) error {
	navCtx, cancel := context.WithTimeout(ctx, time.Duration(s.TimeoutMS)*time.Millisecond)
	defer cancel()
	if err := chromedp.Run(navCtx, chromedp.Navigate(pageURL)); err != nil {
		return err
	}
	return chromedp.Run(ctx, chromedp.Sleep(settle))
}

// translateLaunchError maps a failed browser start into an environment error
// with remediation guidance; other navigation failures pass through.
func translateLaunchError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "executable file not found") || strings.Contains(msg, "exec:") {
		return utils.NewEnvironmentError(
			"브라우저 프로세스 실행에 실패했습니다. Chrome/Chromium 설치 상태를 확인한 뒤 서버를 재시작해 주세요. (" + msg + ")")
	}
	return fmt.Errorf("페이지 이동에 실패했습니다: %w", err)
}
