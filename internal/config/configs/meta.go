package configs

// Meta holds the Marketing API credential context. All three ids are
// opaque to this application; they are loaded once at startup and never
// mutated. Absence is not a startup error: a live call with missing
// credentials fails lazily with an authentication error, and dry runs
// never need them.
type Meta struct {
	// AccessToken is the user access token with ads_management scope.
	AccessToken string `env:"ACCESS_TOKEN"`
	// AdAccountID is the numeric ad account id without the act_ prefix.
	AdAccountID string `env:"AD_ACCOUNT_ID"`
	// PageID is the numeric id of the Facebook page ads run under.
	PageID string `env:"PAGE_ID"`
	// APIVersion selects the Graph API version path segment.
	APIVersion string `env:"API_VERSION" envDefault:"v21.0"`
	// BaseURL is the Graph API host. Overridable for tests.
	BaseURL string `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
}

// Complete reports whether all three credential values are present.
func (m Meta) Complete() bool {
	return m.AccessToken != "" && m.AdAccountID != "" && m.PageID != ""
}

// ActID returns the ad account id in the act_-prefixed form used by
// account-scoped Graph endpoints.
func (m Meta) ActID() string {
	return "act_" + m.AdAccountID
}
