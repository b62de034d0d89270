package lookup

import (
	"context"
	"net/http"
	"regexp"

	"github.com/Sepsepi/blakeaddr/internal/models"
)

// Provider is an interface that defines a method for looking up a person.
// The Search method takes a context, a cleaned "FIRST LAST" name, and the
// parsed address of the person, and returns the matched person with any
// phone numbers found, or an error if the lookup fails.
type Provider interface {
	Search(ctx context.Context, name string, addr models.ParsedAddress) (*models.Person, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var phoneRe = regexp.MustCompile(`\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)

// extractPhones pulls phone-number-shaped strings out of a response body,
// deduplicated, in order of appearance.
func extractPhones(body string) []string {
	seen := make(map[string]bool)
	var phones []string
	for _, match := range phoneRe.FindAllString(body, -1) {
		if !seen[match] {
			seen[match] = true
			phones = append(phones, match)
		}
	}
	return phones
}
