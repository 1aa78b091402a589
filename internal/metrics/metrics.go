package metrics

import "github.com/prometheus/client_golang/prometheus"

// metrics variables
var (
	SummaryCalls = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "report_service_summary_total",
			Help: "Total number of /api/stats/summary calls",
		},
	)

	SummaryHistogramm = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "report_service_summary_duration_seconds",
			Help:    "Duration of Summary query",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
	)

	DeviceListCalls = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "report_service_device_list_total",
			Help: "Total number of /api/devices calls",
		},
	)

	DeviceListHistogramm = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "report_service_device_list_duration_seconds",
			Help:    "Duration of DeviceList query",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
	)

	DeviceDetailCalls = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "report_service_device_detail_total",
			Help: "Total number of /api/devices/{id} calls",
		},
	)

	DeviceDetailHistogramm = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "report_service_device_detail_duration_seconds",
			Help:    "Duration of DeviceDetail query",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
	)

	UsageReportCalls = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "report_service_usage_report_total",
			Help: "Total number of /api/reports/usage calls",
		},
	)

	UsageReportHistogramm = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "report_service_usage_report_duration_seconds",
			Help:    "Duration of UsageReport query",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
	)

	SyntheticFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "report_service_synthetic_fallbacks_total",
			Help: "Total number of report sections served from synthetic data",
		},
	)

	RollupRuns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rollup_service_runs_total",
			Help: "Total number of rollup recomputations",
		},
	)

	RollupHistogramm = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rollup_service_run_duration_seconds",
			Help:    "Duration of one rollup recomputation",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
	)

	RollupKeyFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rollup_service_key_failures_total",
			Help: "Total number of rollup keys whose upsert failed",
		},
	)
)

func init() {
	prometheus.MustRegister(SummaryCalls)
	prometheus.MustRegister(SummaryHistogramm)

	prometheus.MustRegister(DeviceListCalls)
	prometheus.MustRegister(DeviceListHistogramm)

	prometheus.MustRegister(DeviceDetailCalls)
	prometheus.MustRegister(DeviceDetailHistogramm)

	prometheus.MustRegister(UsageReportCalls)
	prometheus.MustRegister(UsageReportHistogramm)

	prometheus.MustRegister(SyntheticFallbacks)

	prometheus.MustRegister(RollupRuns)
	prometheus.MustRegister(RollupHistogramm)
	prometheus.MustRegister(RollupKeyFailures)
}
