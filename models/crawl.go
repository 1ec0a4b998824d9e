package models

// CrawledPlaceData is the result of one place crawl. All four tab texts are
// always present; a tab the place does not have is an empty string. The record
// is built once at the end of a crawl and never mutated afterwards.
type CrawledPlaceData struct {
	PlaceID   string `json:"place_id"`
	SourceURL string `json:"source_url"`
	HomeText  string `json:"home_text"`
	MenuText  string `json:"menu_text"`
	InfoText  string `json:"info_text"`
	NewsText  string `json:"news_text"`
}

// SectionBlock is one structured content block lifted out of the place panel,
// as collected by the in-frame script.
type SectionBlock struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}
