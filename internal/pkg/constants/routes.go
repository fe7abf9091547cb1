package constants

import "net/url"

// Static route constants
const (
	MediaRoute  = "/media"
	PublicRoute = "/"
	// Media path without leading slash for URL construction
	MediaPath = "media"
)

// Detail routes, the slug replaces the :slug parameter
const (
	CategoryDetailRoute = "/category/:slug/"
	NewsDetailRoute     = "/news/:slug/"
	PageDetailRoute     = "/page/:slug/"
)

// CategoryDetailPath returns the canonical path of a main category
func CategoryDetailPath(slug string) string {
	return "/category/" + url.PathEscape(slug) + "/"
}

// NewsDetailPath returns the canonical path of a news article
func NewsDetailPath(slug string) string {
	return "/news/" + url.PathEscape(slug) + "/"
}

// PageDetailPath returns the canonical path of a static page
func PageDetailPath(slug string) string {
	return "/page/" + url.PathEscape(slug) + "/"
}
