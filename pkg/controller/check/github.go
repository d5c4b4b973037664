package check

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/ghaup/pkg/github"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"golang.org/x/sync/errgroup"
)

type RepositoriesService interface {
	GetLatestRelease(ctx context.Context, owner, repo string) (*github.RepositoryRelease, *github.Response, error)
}

const defaultConcurrency = 5

// checkActions looks up the latest release of every action concurrently.
// The number of concurrent lookups is bounded by param.Concurrency. A lookup
// failure yields a diagnostic instead of a result, so a broken reference
// never fails the whole run.
func (c *Controller) checkActions(ctx context.Context, logE *logrus.Entry, actions []*Action) []*Result {
	limit := c.param.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}
	results := make([]*Result, len(actions))
	g := &errgroup.Group{}
	g.SetLimit(limit)
	for i, action := range actions {
		g.Go(func() error {
			results[i] = c.checkAction(ctx, logE, action)
			return nil
		})
	}
	_ = g.Wait() // workers always return nil
	arr := make([]*Result, 0, len(results))
	for _, result := range results {
		if result != nil {
			arr = append(arr, result)
		}
	}
	return arr
}

func (c *Controller) checkAction(ctx context.Context, logE *logrus.Entry, action *Action) *Result {
	logE = logE.WithFields(logrus.Fields{
		"action":  action.Name,
		"version": action.Version,
	})
	release, _, err := c.repositoriesService.GetLatestRelease(ctx, action.RepoOwner, action.RepoName)
	if err != nil {
		c.notifyLookupFailure(logE, err)
		return nil
	}
	latest := release.GetTagName()
	if latest == "" || latest == action.Version {
		return nil
	}
	level := classifyUpdate(action.Version, latest)
	if c.param.MajorOnly && level != LevelMajor {
		return nil
	}
	return &Result{
		Action:        action,
		LatestVersion: latest,
		Level:         level,
	}
}

// notifyLookupFailure converts a failed release lookup to a diagnostic so
// the remaining actions are still checked and reported.
func (c *Controller) notifyLookupFailure(logE *logrus.Entry, err error) {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		logE.WithField("reset", rateLimitErr.Rate.Reset.Time).Warn("API rate limit exceeded, retry after the reset time")
		return
	}
	var abuseRateLimitErr *github.AbuseRateLimitError
	if errors.As(err, &abuseRateLimitErr) {
		if abuseRateLimitErr.RetryAfter != nil {
			logE = logE.WithField("retry_after", *abuseRateLimitErr.RetryAfter)
		}
		logE.Warn("secondary API rate limit exceeded, retry later")
		return
	}
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
		logE.Warn("repository isn't found. The repository may be renamed or removed")
		return
	}
	logerr.WithError(logE, err).Error("get the latest release")
}
