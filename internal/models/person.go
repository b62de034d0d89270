package models

// Person represents a single people-search result returned by a lookup provider.
type Person struct {
	Name           string // Name is the matched person name.
	City           string // City reported by the provider.
	State          string // State reported by the provider.
	PrimaryPhone   string // PrimaryPhone is the best phone number found, may be empty.
	SecondaryPhone string // SecondaryPhone is an alternate number, may be empty.
}

// Proxy describes a single upstream proxy endpoint, optionally authenticated.
type Proxy struct {
	Server   string // Server is the proxy URL, e.g. "http://host:port".
	Username string // Username for proxy auth, empty for open proxies.
	Password string // Password for proxy auth; may carry a session suffix.
}
