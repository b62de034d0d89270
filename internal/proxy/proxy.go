// Package proxy manages the optional upstream proxy pool used by the
// people-search providers. AI/API traffic never goes through these proxies;
// they exist only to keep scrape sessions apart.
package proxy

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Sepsepi/blakeaddr/internal/models"
)

const sessionMarker = "_session-"

// Pool holds the configured proxies and a rotation cursor.
type Pool struct {
	mu      sync.Mutex
	proxies []models.Proxy
	next    int
	log     *slog.Logger
}

// NewPool parses a comma-separated proxy list in "host:port[:user:pass]"
// form (the BLAKE_PROXIES format) into a Pool. Malformed entries are
// skipped. An empty list yields a usable pool that always returns nil,
// meaning direct connection.
func NewPool(raw string, log *slog.Logger) *Pool {
	pool := &Pool{log: log}

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		const minParts, authParts = 2, 4
		if len(parts) < minParts {
			log.Warn("Skipping malformed proxy entry", "entry", entry)
			continue
		}

		prx := models.Proxy{Server: fmt.Sprintf("http://%s:%s", parts[0], parts[1])}
		if len(parts) >= authParts {
			prx.Username = parts[2]
			prx.Password = parts[3]
		}
		pool.proxies = append(pool.proxies, prx)
	}

	if len(pool.proxies) == 0 {
		log.Info("No proxies configured, lookups will use direct connection")
	} else {
		log.Info("Loaded proxies from environment", "count", len(pool.proxies))
	}

	return pool
}

// Enabled reports whether any proxies are configured.
func (p *Pool) Enabled() bool {
	return len(p.proxies) > 0
}

// Count returns the number of configured proxies.
func (p *Pool) Count() int {
	return len(p.proxies)
}

// Random returns a copy of a randomly chosen proxy, or nil when the pool
// is empty.
func (p *Pool) Random() *models.Proxy {
	if len(p.proxies) == 0 {
		return nil
	}
	prx := p.proxies[rand.Intn(len(p.proxies))]
	return &prx
}

// Next returns a copy of the next proxy in round-robin order, or nil when
// the pool is empty.
func (p *Pool) Next() *models.Proxy {
	if len(p.proxies) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	prx := p.proxies[p.next]
	p.next = (p.next + 1) % len(p.proxies)
	return &prx
}

// SessionProxy returns a random proxy whose password carries a unique
// per-batch session suffix, so concurrent batches never share an upstream
// session. Any previous session suffix is replaced, never stacked.
func (p *Pool) SessionProxy() *models.Proxy {
	prx := p.Random()
	if prx == nil {
		return nil
	}

	if prx.Password != "" {
		base := prx.Password
		if idx := strings.Index(base, sessionMarker); idx >= 0 {
			base = base[:idx]
		}
		const sessionRandMax = 9000
		session := fmt.Sprintf("batch_%d_%d", time.Now().Unix(), 1000+rand.Intn(sessionRandMax))
		prx.Password = base + sessionMarker + session
		p.log.Debug("Created unique proxy session", "session", session)
	}

	return prx
}
