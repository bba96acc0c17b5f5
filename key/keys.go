// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 15

// API Access - these keys configure how the VNDB API is reached and authenticated against.
const (
	APIEndpoint  = "api.endpoint"
	APIToken     = "api.token"
	APITimeout   = "api.timeout"
	APIUserAgent = "api.user_agent"
)

// Query Defaults - these keys provide defaults for search commands when flags are omitted.
const (
	QueryResults = "query.results"
	QueryUser    = "query.user"
)

// Output Formatting - these keys govern how API responses are printed.
const (
	OutputPretty = "output.pretty"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliStrict       = "cli.strict"
	CliBrowser      = "cli.browser"
)
