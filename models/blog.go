package models

// Field keys of the blog input record shared with the UI consumer. The merger
// only ever touches these; unknown keys pass through untouched.
const (
	FieldMapURL         = "map_url"
	FieldPlaceName      = "place_name"
	FieldBusinessHours  = "business_hours"
	FieldLocationInfo   = "location_info"
	FieldHomeTabInfo    = "home_tab_info"
	FieldMenuTabInfo    = "menu_tab_info"
	FieldInfoTabInfo    = "info_tab_info"
	FieldNewsTabInfo    = "news_tab_info"
	FieldParkingOrTips  = "parking_or_tips"
	FieldInteriorMenu   = "interior_and_menu"
	FieldSignatureTaste = "signature_taste"
	FieldTone           = "tone"
	FieldTargetKeyword  = "target_keyword"
)

// BlogFieldLabels gives the Korean label used when the field map is rendered
// into a generation brief, in presentation order.
var BlogFieldLabels = []struct {
	Key   string
	Label string
}{
	{FieldPlaceName, "가게 이름"},
	{FieldTargetKeyword, "타깃 키워드"},
	{FieldBusinessHours, "영업시간"},
	{FieldLocationInfo, "위치 정보"},
	{FieldParkingOrTips, "주차/이용 팁"},
	{FieldInteriorMenu, "인테리어와 메뉴"},
	{FieldSignatureTaste, "시그니처 맛 포인트"},
	{FieldTone, "글 톤"},
	{FieldHomeTabInfo, "홈 탭 정보"},
	{FieldMenuTabInfo, "메뉴 탭 정보"},
	{FieldInfoTabInfo, "정보 탭 정보"},
	{FieldNewsTabInfo, "소식 탭 정보"},
}
