// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, the keyring and CLI branding.
	App = "vnkit"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent identifies vnkit to the VNDB API, which asks clients to set a descriptive one.
	UserAgent = App + "/" + Version + " (+https://github.com/vnkit/vnkit)"

	// APIEndpoint is the base URL of the VNDB Kana API.
	APIEndpoint = "https://api.vndb.org/kana"

	// Website is the VNDB website, where every entry has a page named by its id.
	Website = "https://vndb.org"

	// Repository is the upstream source repository, used by the version check.
	Repository = "vnkit/vnkit"
)

// Build metadata, set with -ldflags "-X github.com/vnkit/vnkit/constant.Revision=..." at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
