package utils

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var youtubeEmbedPattern = regexp.MustCompile(`^https://(?:www\.)?(?:youtube\.com/embed/|youtube-nocookie\.com/embed/)`)

var (
	contentPolicy     *bluemonday.Policy
	contentPolicyOnce sync.Once
)

func buildContentPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("iframe")
	policy.AllowAttrs("src").Matching(youtubeEmbedPattern).OnElements("iframe")
	policy.AllowAttrs("title", "allow", "allowfullscreen", "frameborder", "loading").OnElements("iframe")
	return policy
}

// SanitizeHTML strips scripts, event handlers and foreign iframes from editor HTML.
// YouTube embeds survive.
func SanitizeHTML(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	contentPolicyOnce.Do(func() {
		contentPolicy = buildContentPolicy()
	})
	return contentPolicy.Sanitize(content)
}

// StripHTML removes all markup, used for meta descriptions and quotes
func StripHTML(content string) string {
	return strings.TrimSpace(bluemonday.StrictPolicy().Sanitize(content))
}
