package lookup_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/Sepsepi/blakeaddr/internal/lookup"
	"github.com/Sepsepi/blakeaddr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// mockHTTPClient implements lookup.HTTPClient via a configurable doFunc.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

var parklandAddr = models.ParsedAddress{
	Street:       "10310 WATERSIDE CT",
	City:         "PARKLAND",
	State:        "FL",
	Zip:          "33076",
	SearchFormat: "10310 WATERSIDE CT, PARKLAND",
}

func TestZabaProvider_Search(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()
	defaultRL := rate.NewLimiter(rate.Inf, 0)

	t.Run("successful search", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				// Verify request parameters
				assert.Equal(t, "GET", req.Method)
				assert.Contains(t, req.URL.String(), "zabasearch.com/people/john-smith/")
				assert.Equal(t, "FL", req.URL.Query().Get("state"))
				assert.Equal(t, "PARKLAND", req.URL.Query().Get("city"))
				assert.NotEmpty(t, req.Header.Get("User-Agent"))

				responseBody := `<html>Phone: (954) 555-1234 also seen 954-555-9876 and (954) 555-1234</html>`
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(responseBody)),
				}, nil
			},
		}

		provider := lookup.NewZabaProviderWithClient(mockClient, defaultRL, logger)
		person, err := provider.Search(ctx, "JOHN SMITH", parklandAddr)

		require.NoError(t, err)
		require.NotNil(t, person)
		assert.Equal(t, "JOHN SMITH", person.Name)
		assert.Equal(t, "PARKLAND", person.City)
		assert.Equal(t, "(954) 555-1234", person.PrimaryPhone)
		assert.Equal(t, "954-555-9876", person.SecondaryPhone)
	})

	t.Run("empty name", func(t *testing.T) {
		provider := lookup.NewZabaProviderWithClient(&mockHTTPClient{}, defaultRL, logger)
		person, err := provider.Search(ctx, "  ", parklandAddr)

		require.Nil(t, person)
		require.ErrorIs(t, err, lookup.ErrZabaEmptyName)
	})

	t.Run("no phones in response", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString("<html>no matches</html>")),
				}, nil
			},
		}

		provider := lookup.NewZabaProviderWithClient(mockClient, defaultRL, logger)
		person, err := provider.Search(ctx, "JOHN SMITH", parklandAddr)

		require.Nil(t, person)
		require.ErrorIs(t, err, lookup.ErrZabaNoResults)
	})

	t.Run("blocked by status", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusForbidden,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		provider := lookup.NewZabaProviderWithClient(mockClient, defaultRL, logger)
		_, err := provider.Search(ctx, "JOHN SMITH", parklandAddr)

		require.ErrorIs(t, err, lookup.ErrZabaBlocked)
	})

	t.Run("challenge page with status 200", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString("<html>Checking your browser: challenge</html>")),
				}, nil
			},
		}

		provider := lookup.NewZabaProviderWithClient(mockClient, defaultRL, logger)
		_, err := provider.Search(ctx, "JOHN SMITH", parklandAddr)

		require.ErrorIs(t, err, lookup.ErrZabaBlocked)
	})

	t.Run("unexpected status", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusTeapot,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		provider := lookup.NewZabaProviderWithClient(mockClient, defaultRL, logger)
		_, err := provider.Search(ctx, "JOHN SMITH", parklandAddr)

		require.ErrorIs(t, err, lookup.ErrZabaBadStatus)
	})

	t.Run("transport error", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, assert.AnError
			},
		}

		provider := lookup.NewZabaProviderWithClient(mockClient, defaultRL, logger)
		_, err := provider.Search(ctx, "JOHN SMITH", parklandAddr)

		require.Error(t, err)
		require.ErrorIs(t, err, assert.AnError)
	})
}
