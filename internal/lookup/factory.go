package lookup

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Sepsepi/blakeaddr/internal/proxy"
)

// ProviderType represents the type of people-search provider.
type ProviderType string

const (
	// ProviderTypeZaba represents the ZabaSearch people-search provider.
	ProviderTypeZaba ProviderType = "zabasearch"
	// ProviderTypeCyber represents the CyberBackgroundChecks provider.
	ProviderTypeCyber ProviderType = "cyberbackground"
)

// ProviderConfig holds configuration for creating a people-search provider.
type ProviderConfig struct {
	Type      ProviderType // Type of provider to create
	RateLimit int          // Rate limit for requests per second
	Proxies   *proxy.Pool  // Optional proxy pool; nil or empty means direct connection
	Logger    *slog.Logger // Logger for the provider
}

// NewProvider creates a people-search provider based on the provided
// configuration. It applies the Factory pattern to decouple provider
// instantiation from business logic.
//
// Supported provider types:
// - "zabasearch": free people search, proxy rotation recommended
// - "cyberbackground": fallback phone lookup site
//
// Returns an error if the provider type is unsupported.
func NewProvider(config ProviderConfig) (Provider, error) {
	if config.RateLimit == 0 {
		config.RateLimit = 1
		config.Logger.Warn("Rate limit for lookup provider not set, set a default value", "value", config.RateLimit)
	}

	client, err := newHTTPClient(config.Proxies)
	if err != nil {
		return nil, err
	}

	switch config.Type {
	case ProviderTypeZaba:
		return NewZabaProvider(client, config.RateLimit, config.Logger), nil
	case ProviderTypeCyber:
		return NewCyberProvider(client, config.RateLimit, config.Logger), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

// newHTTPClient builds the HTTP client used by a provider. When the proxy
// pool has entries, every request goes through a session-scoped proxy so
// concurrent batches stay isolated upstream.
func newHTTPClient(pool *proxy.Pool) (*http.Client, error) {
	const timeout = 20 * time.Second

	if pool == nil || !pool.Enabled() {
		return &http.Client{Timeout: timeout}, nil
	}

	prx := pool.SessionProxy()
	proxyURL, err := url.Parse(prx.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to parse proxy server URL: %w", err)
	}
	if prx.Username != "" {
		proxyURL.User = url.UserPassword(prx.Username, prx.Password)
	}

	transport := &http.Transport{Proxy: http.ProxyURL(proxyURL)}

	return &http.Client{Timeout: timeout, Transport: transport}, nil
}
