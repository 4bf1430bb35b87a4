package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Game Metrics
var (
	CastsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCastsTotal,
			Help: HelpTextCastsTotal,
		},
		[]string{LabelOutcome},
	)

	CatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatchesTotal,
			Help: HelpTextCatchesTotal,
		},
		[]string{LabelRarity},
	)

	BaitConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBaitConsumed,
			Help: HelpTextBaitConsumed,
		},
		[]string{LabelItem},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResetsTotal,
			Help: HelpTextResetsTotal,
		},
	)

	SnapshotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsTotal,
			Help: HelpTextSnapshotsTotal,
		},
		[]string{LabelOperation, LabelResult},
	)
)

// Discord Metrics
var (
	DiscordCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
		[]string{LabelCommand, LabelStatus},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCommandDuration,
			Help:    HelpTextCommandDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelCommand},
	)
)
