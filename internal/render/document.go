package render

import (
	"fmt"
	"strings"
	"time"
)

// Document assembles the final profile page: header, the three fragments
// framed by "---" separators, and a "Last updated" stamp taken from the
// given clock. When repo is non-empty a credit line linking the generating
// repository is appended. Deterministic given its inputs and the clock.
func Document(apod, people, iss string, now time.Time, repo string) string {
	updated := now.UTC().Format("2006-01-02 15:04:05 UTC")

	doc := fmt.Sprintf(
		"\n# ✨ Welcome to my GitHub profile! Here are some fascinating insights from the cosmos. ✨\n\n%s\n\n---\n\n%s\n\n---\n\n%s\n\n---\n\n*Last updated: %s*\n",
		apod, people, iss, updated,
	)
	if repo != "" {
		doc += fmt.Sprintf("\n*Generated by [%s](https://github.com/%s)*\n", repo, repo)
	}

	return strings.TrimSpace(doc)
}
