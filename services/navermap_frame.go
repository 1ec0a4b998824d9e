package services

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// The place detail panel lives in a cross-origin iframe served from this host.
const placeFrameHost = "pcmap.place.naver.com"

const tabLinksScript = `(() => {
  const out = {};
  const links = Array.from(document.querySelectorAll('a[role="tab"]'));
  for (const a of links) {
    const text = (a.innerText || '').trim();
    const href = a.getAttribute('href') || '';
    if (!text || !href) continue;
    out[text] = href;
  }
  return out;
})()`

// Nudges the panel's scroll container so lazily rendered blocks (the business
// hours table in particular) get mounted, then restores the position.
const scrollNudgeScript = `(() => {
  const box = document.querySelector('#_pcmap_list_scroll_container') || document.scrollingElement || document.documentElement;
  if (!box) return;
  const original = box.scrollTop || 0;
  box.scrollTop = Math.min(500, (box.scrollHeight || 500));
  box.scrollTop = original;
})()`

const expandHoursScript = `(() => {
  const cands = Array.from(document.querySelectorAll('[aria-expanded="false"], a, button, [role="button"]'));
  const target = cands.find((el) => {
    const t = (el.innerText || '').trim();
    if (!t) return false;
    const hasExpandWord = t.includes('펼쳐보기') || t.includes('더보기');
    const hasTimePattern = /\b\d{1,2}:\d{2}\b/.test(t) || t.includes('라스트오더');
    return hasExpandWord && hasTimePattern;
  });
  if (target) {
    target.click();
    return true;
  }
  return false;
})()`

const sectionBlocksScript = `(() => {
  const blocks = [];
  const sections = Array.from(document.querySelectorAll('.place_section'));
  for (const section of sections) {
    const titleNode = section.querySelector('h2, h3, .place_section_header, .place_section_title');
    const title = (titleNode && titleNode.innerText ? titleNode.innerText : '').trim();
    const text = (section.innerText || '').trim();
    if (!text) continue;
    blocks.push({ title, text });
  }
  return blocks;
})()`

// locatePlaceFrame scans the attached browser targets for the place panel
// iframe and returns a chromedp context bound to it. No retry here; the
// orchestrator decides whether to wait and scan again.
func (s *NaverMapService) locatePlaceFrame(ctx context.Context) (context.Context, context.CancelFunc, bool) {
	infos, err := chromedp.Targets(ctx)
	if err != nil {
		return nil, nil, false
	}
	for _, info := range infos {
		if strings.Contains(info.URL, placeFrameHost) {
			frameCtx, cancel := chromedp.NewContext(ctx, chromedp.WithTargetID(info.TargetID))
			return frameCtx, cancel, true
		}
	}
	return nil, nil, false
}

// discoverTabs reads the tab label -> relative path mapping from the place
// frame. Document order wins ties: a duplicate label overwrites earlier ones.
func (s *NaverMapService) discoverTabs(frameCtx context.Context) map[string]string {
	links := map[string]string{}
	if err := chromedp.Run(frameCtx, chromedp.Evaluate(tabLinksScript, &links)); err != nil {
		return map[string]string{}
	}
	return links
}

// expandBusinessHours tries to click the collapsed business-hours toggle.
// Best effort by contract: any evaluation failure is treated as "not found"
// and reported as false, never as an error, because the target markup is not
// under our control.
func (s *NaverMapService) expandBusinessHours(frameCtx context.Context) bool {
	_ = chromedp.Run(frameCtx, chromedp.Evaluate(scrollNudgeScript, nil))

	var clicked bool
	if err := chromedp.Run(frameCtx, chromedp.Evaluate(expandHoursScript, &clicked)); err != nil {
		return false
	}
	return clicked
}

// expandWithRetry runs the expand trigger up to attempts times, pausing 700ms
// once a click lands and retryDelay between failed attempts.
func (s *NaverMapService) expandWithRetry(frameCtx context.Context, attempts int, retryDelay time.Duration) {
	for i := 0; i < attempts; i++ {
		if s.expandBusinessHours(frameCtx) {
			_ = chromedp.Run(frameCtx, chromedp.Sleep(700*time.Millisecond))
			return
		}
		_ = chromedp.Run(frameCtx, chromedp.Sleep(retryDelay))
	}
}
