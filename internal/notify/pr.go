package notify

// PRInfo carries the pull request metadata a notification is built from.
// All fields are opaque strings supplied by the CI environment (or the
// GitHub API) and are not mutated after construction.
type PRInfo struct {
	Number     string
	Title      string
	Body       string
	URL        string
	Author     string
	Repository string
	BaseSHA    string
	HeadSHA    string
}
