// Package github provides the GitHub API client used to look up releases.
// ghaup only calls public read endpoints, so the client is unauthenticated.
// It identifies itself with a User-Agent header containing the program name
// and version.
package github

import (
	"net/http"
	"time"

	"github.com/google/go-github/v74/github"
)

type (
	AbuseRateLimitError = github.AbuseRateLimitError
	Client              = github.Client
	ErrorResponse       = github.ErrorResponse
	RateLimitError      = github.RateLimitError
	RepositoryRelease   = github.RepositoryRelease
	Response            = github.Response
)

const requestTimeout = 30 * time.Second

// New creates an unauthenticated GitHub API client.
// The transport timeout bounds a stalled release lookup.
func New(version string) *Client {
	client := github.NewClient(&http.Client{
		Timeout: requestTimeout,
	})
	client.UserAgent = userAgent(version)
	return client
}

func userAgent(version string) string {
	if version == "" {
		return "ghaup"
	}
	return "ghaup/" + version
}

func Ptr[T any](v T) *T {
	return github.Ptr(v)
}
