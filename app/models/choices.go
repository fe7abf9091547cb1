package models

// Publication status shared by categories, news rooms, news and pages
const (
	STATUS_DRAFT     = "D"
	STATUS_PUBLISHED = "P"
)

// Home page placement of a news article
const (
	TOP_NEWS_SLIDER = "S"
	TOP_NEWS_TOP6   = "6"
	TOP_NEWS_NONE   = "N"
)

// StatusLabels maps the stored status code to its display name
var StatusLabels = map[string]string{
	STATUS_DRAFT:     "Draft",
	STATUS_PUBLISHED: "Published",
}

// TopNewsLabels maps the stored placement code to its display name
var TopNewsLabels = map[string]string{
	TOP_NEWS_SLIDER: "Slider",
	TOP_NEWS_TOP6:   "Top 6",
	TOP_NEWS_NONE:   "None",
}

// IsValidStatus reports whether s is a known publication status
func IsValidStatus(s string) bool {
	_, ok := StatusLabels[s]
	return ok
}

// IsValidTopNews reports whether s is a known home page placement
func IsValidTopNews(s string) bool {
	_, ok := TopNewsLabels[s]
	return ok
}
