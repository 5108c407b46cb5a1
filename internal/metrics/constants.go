package metrics

// Metric names.
const (
	MetricNameHTTPRequestsTotal    = "gamebot_http_requests_total"
	MetricNameHTTPRequestDuration  = "gamebot_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "gamebot_http_requests_in_flight"
	MetricNameCommandsTotal        = "gamebot_commands_total"
	MetricNameCommandDuration      = "gamebot_command_duration_seconds"
)

// Label names.
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelCommand = "command"
)

// Command status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// HTTPLatencyBuckets covers webhook round-trips from fast rejections to
// slow storage calls.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
