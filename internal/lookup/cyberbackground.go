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

// CyberBaseURL -- CyberBackgroundChecks people-search base URL.
const CyberBaseURL = "https://www.cyberbackgroundchecks.com/people"

// CyberProvider implements people-search lookups against
// CyberBackgroundChecks, used as the fallback when ZabaSearch yields nothing.
type CyberProvider struct {
	client    HTTPClient
	baseURL   string
	log       *slog.Logger
	limiter   *rate.Limiter
	userAgent string
}

// Common errors for the CyberBackgroundChecks provider.
var (
	ErrCyberEmptyName = errors.New("cyberbackground provider got empty name")
	ErrCyberNoResults = errors.New("cyberbackground returned no results for person")
	ErrCyberBadStatus = errors.New("cyberbackground returned unexpected status")
)

// NewCyberProvider creates a new CyberBackgroundChecks lookup provider.
func NewCyberProvider(client HTTPClient, rateLimit int, log *slog.Logger) *CyberProvider {
	if client == nil {
		const timeout = 20
		client = &http.Client{Timeout: timeout * time.Second}
	}

	return &CyberProvider{
		client:    client,
		baseURL:   CyberBaseURL,
		log:       log,
		limiter:   rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
		userAgent: browserUserAgent,
	}
}

// NewCyberProviderWithClient allows injecting a custom HTTP client and limiter.
func NewCyberProviderWithClient(client HTTPClient, limiter *rate.Limiter, log *slog.Logger) *CyberProvider {
	return &CyberProvider{
		client:    client,
		baseURL:   CyberBaseURL,
		log:       log,
		limiter:   limiter,
		userAgent: browserUserAgent,
	}
}

// Search looks up a person by name and state. The site routes by
// /people/<first>-<last>/<state>; the city narrows the match when present.
func (cp *CyberProvider) Search(
	ctx context.Context,
	name string,
	addr models.ParsedAddress,
) (*models.Person, error) {
	if err := cp.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	if strings.TrimSpace(name) == "" {
		return nil, ErrCyberEmptyName
	}

	cp.log.DebugContext(ctx, "Searching on CyberBackgroundChecks", "name", name, "state", addr.State)

	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	path := cp.baseURL + "/" + url.PathEscape(slug)
	if addr.State != "" {
		path += "/" + strings.ToLower(addr.State)
	}
	if addr.City != "" {
		path += "/" + url.PathEscape(strings.ToLower(strings.ReplaceAll(addr.City, " ", "-")))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", cp.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := cp.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCyberNoResults
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrCyberBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	phones := extractPhones(string(body))
	if len(phones) == 0 {
		return nil, ErrCyberNoResults
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

	cp.log.InfoContext(ctx, "CyberBackgroundChecks found phones", "name", name, "count", len(phones))

	return person, nil
}
