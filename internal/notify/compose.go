// Package notify composes review-request notifications from pull request
// metadata and defines the transport contract used to deliver them.
package notify

import "fmt"

// Compose builds the fixed four-line review-request message. All fields of
// pr and the summary must already be resolved strings.
func Compose(pr PRInfo, summary string) string {
	return fmt.Sprintf(
		"Hello Team. Please, review this opened PR in %s\n"+
			"*%s* by @%s\n"+
			"Summary: %s\n"+
			":pr-opened: Link: %s",
		pr.Repository, pr.Title, pr.Author, summary, pr.URL,
	)
}
