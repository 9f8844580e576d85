package middleware

import (
	"unibot/pkg/log"
)

// Middleware bundles the auth middlewares used by the HTTP server.
type Middleware struct {
	l              log.Logger
	adminToken     string
	internalSecret string
}

func New(l log.Logger, adminToken, internalSecret string) Middleware {
	return Middleware{
		l:              l,
		adminToken:     adminToken,
		internalSecret: internalSecret,
	}
}
