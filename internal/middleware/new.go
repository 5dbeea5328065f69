package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"weatherornot/pkg/log"
)

const limiterCacheSize = 1024

// Middleware bundles the gin middlewares used by the HTTP server.
type Middleware struct {
	l         log.Logger
	perMinute int
	limiters  *lru.Cache[string, *rate.Limiter]
}

func New(l log.Logger, ratePerMinute int) Middleware {
	limiters, _ := lru.New[string, *rate.Limiter](limiterCacheSize)
	return Middleware{
		l:         l,
		perMinute: ratePerMinute,
		limiters:  limiters,
	}
}
