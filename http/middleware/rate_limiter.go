package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/xy-planning-network/folio/metrics"
	"golang.org/x/time/rate"
)

const (
	defaultRate  rate.Limit = 5
	defaultBurst            = 20
	forgetAfter             = 60 * time.Minute
	sweepEvery              = time.Minute
)

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	burst int
	limit rate.Limit
	swept time.Time
	val   map[string]Visitor
	sync.Mutex
}

// NewVisitors constructs a *Visitors limiting each visitor to limit requests every second
// with bursts of up to burst.
//
// Non-positive values fall back to 5 requests every second with bursts of up to 20.
func NewVisitors(limit rate.Limit, burst int) *Visitors {
	if limit <= 0 {
		limit = defaultRate
	}
	if burst <= 0 {
		burst = defaultBurst
	}

	return &Visitors{
		burst: burst,
		limit: limit,
		swept: time.Now().UTC(),
		val:   make(map[string]Visitor),
	}
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// Len returns the number of visitors tracked.
func (vs *Visitors) Len() int {
	vs.Lock()
	defer vs.Unlock()

	return len(vs.val)
}

// cleanup deletes a Visitor from Visitors if they have not been seen in over an hour.
// Visitors are swept at most once a minute.
func (vs *Visitors) cleanup(now time.Time) {
	vs.Lock()
	defer vs.Unlock()

	if now.Sub(vs.swept) < sweepEvery {
		return
	}

	for ip, v := range vs.val {
		if now.Sub(v.LastSeen) > forgetAfter {
			delete(vs.val, ip)
		}
	}
	vs.swept = now
}

// RateLimit encloses the Visitors map and serves the http.Handler,
// answering 429 Too Many Requests to visitors exceeding their limit.
// Rejections are counted when c is not nil.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
func RateLimit(visitors *Visitors, c *metrics.Collector) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			visitors.cleanup(time.Now().UTC())

			if !visitors.Fetch(GetIPAddress(r)).Limiter.Allow() {
				if c != nil {
					c.RateLimited()
				}

				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}
