package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Game metric names
const (
	MetricNameCastsTotal      = "fishing_casts_total"
	MetricNameCatchesTotal    = "fishing_catches_total"
	MetricNameBaitConsumed    = "fishing_bait_consumed_total"
	MetricNameMoneyEarned     = "fishing_money_earned_total"
	MetricNameMoneySpent      = "fishing_money_spent_total"
	MetricNameItemsBought     = "fishing_items_bought_total"
	MetricNameResetsTotal     = "fishing_resets_total"
	MetricNameSnapshotsTotal  = "fishing_snapshots_total"
	MetricNameDiscordCommands = "discord_commands_total"
	MetricNameCommandDuration = "discord_command_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being processed"
)

// Game metric help text
const (
	HelpTextCastsTotal      = "Fishing attempts by outcome"
	HelpTextCatchesTotal    = "Successful catches by rarity tier"
	HelpTextBaitConsumed    = "Consumable items used up by casts"
	HelpTextMoneyEarned     = "Money credited from catches"
	HelpTextMoneySpent      = "Money debited by purchases"
	HelpTextItemsBought     = "Items bought from the shop"
	HelpTextResetsTotal     = "Player records reset to the starting state"
	HelpTextSnapshotsTotal  = "Save exports and imports by result"
	HelpTextDiscordCommands = "Discord interactions handled by command and status"
	HelpTextCommandDuration = "Discord command handling latency in seconds"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOutcome   = "outcome"
	LabelRarity    = "rarity"
	LabelItem      = "item"
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelCommand   = "command"
)

// Label values
const (
	OutcomeCaught  = "caught"
	OutcomeEscaped = "escaped"

	OperationExport = "export"
	OperationImport = "import"

	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// UnmatchedRoute labels requests that no route matched.
const UnmatchedRoute = "unmatched"
