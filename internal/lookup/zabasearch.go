package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Sepsepi/blakeaddr/internal/models"
	"golang.org/x/time/rate"
)

// ZabaBaseURL -- ZabaSearch people-search base URL.
const ZabaBaseURL = "https://www.zabasearch.com/people/"

// ZabaProvider implements people-search lookups against ZabaSearch.
type ZabaProvider struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the ZabaSearch site
	log     *slog.Logger  // Logger for logging operations
	limiter *rate.Limiter // Rate limiter
	// userAgent mimics a desktop browser; the site rejects default Go clients.
	userAgent string
}

// Common errors for the ZabaSearch provider.
var (
	ErrZabaEmptyName = errors.New("zabasearch provider got empty name")
	ErrZabaNoResults = errors.New("zabasearch returned no results for person")
	ErrZabaBlocked   = errors.New("zabasearch blocked the request (challenge page)")
	ErrZabaBadStatus = errors.New("zabasearch returned unexpected status")
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// NewZabaProvider creates a new ZabaSearch lookup provider with its own
// HTTP client. Pass a client built by the factory to route through a proxy.
func NewZabaProvider(client HTTPClient, rateLimit int, log *slog.Logger) *ZabaProvider {
	if client == nil {
		const timeout = 20
		client = &http.Client{Timeout: timeout * time.Second}
	}

	return &ZabaProvider{
		client:    client,
		baseURL:   ZabaBaseURL,
		log:       log,
		limiter:   rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
		userAgent: browserUserAgent,
	}
}

// NewZabaProviderWithClient allows injecting a custom HTTP client and limiter.
// Useful for testing with mocked HTTP clients.
func NewZabaProviderWithClient(client HTTPClient, limiter *rate.Limiter, log *slog.Logger) *ZabaProvider {
	return &ZabaProvider{
		client:    client,
		baseURL:   ZabaBaseURL,
		log:       log,
		limiter:   limiter,
		userAgent: browserUserAgent,
	}
}

// Search looks up a person on ZabaSearch by cleaned name and parsed address
// and returns the phone numbers found on the result page.
func (zp *ZabaProvider) Search(
	ctx context.Context,
	name string,
	addr models.ParsedAddress,
) (*models.Person, error) {
	if err := zp.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	if strings.TrimSpace(name) == "" {
		return nil, ErrZabaEmptyName
	}

	zp.log.DebugContext(ctx, "Searching on ZabaSearch", "name", name, "city", addr.City)

	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	reqURL, err := url.Parse(zp.baseURL + slug + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse request URL: %w", err)
	}

	query := reqURL.Query()
	if addr.State != "" {
		query.Set("state", addr.State)
	}
	if addr.City != "" {
		query.Set("city", addr.City)
	}
	reqURL.RawQuery = query.Encode()

	zp.log.DebugContext(ctx, "ZabaSearch request URL", "url", reqURL.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", zp.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := zp.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusForbidden, http.StatusServiceUnavailable:
		return nil, ErrZabaBlocked
	default:
		return nil, fmt.Errorf("%w: %d", ErrZabaBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Challenge pages come back with status 200 but an interstitial body.
	if strings.Contains(strings.ToLower(string(body)), "challenge") {
		return nil, ErrZabaBlocked
	}

	phones := extractPhones(string(body))
	if len(phones) == 0 {
		return nil, ErrZabaNoResults
	}

	person := &models.Person{
		Name:         name,
		City:         addr.City,
		State:        addr.State,
		PrimaryPhone: phones[0],
	}
	if len(phones) > 1 {
		person.SecondaryPhone = phones[1]
	}

	zp.log.InfoContext(ctx, "ZabaSearch found phones", "name", name, "count", len(phones))

	return person, nil
}
