package webapi

import (
	"net/http"
	"time"

	pkgLog "unibot/pkg/log"
)

type implRepository struct {
	l          pkgLog.Logger
	baseURL    string
	secret     string
	httpClient *http.Client
}

// New creates a reply repository backed by the dashboard's internal API.
func New(l pkgLog.Logger, baseURL, secret string, timeout time.Duration) *implRepository {
	return &implRepository{
		l:       l,
		baseURL: baseURL,
		secret:  secret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}
