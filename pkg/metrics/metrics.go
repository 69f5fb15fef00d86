package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	namespace = "reach"
	subsystem = "site"
)

var (
	// PageViews counts rendered pages by route name
	PageViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "page_views_total",
			Help:      "Rendered pages by page name",
		},
		[]string{"page"},
	)

	// LegalFetches counts legal document loads by where the markdown came from
	LegalFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "legal_fetch_total",
			Help:      "Legal document loads by slug and outcome (fetched, cached, fallback)",
		},
		[]string{"slug", "outcome"},
	)

	// DetectedOS counts OS detection results on the downloads page
	DetectedOS = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "detected_os_total",
			Help:      "Operating systems detected from the user-agent",
		},
		[]string{"os"},
	)

	// DownloadClicks mirrors the persisted download click counters
	DownloadClicks = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "download_clicks_total",
			Help:      "Download clicks per platform since the counters were created",
		},
		[]string{"platform"},
	)
)

func init() {
	prometheus.MustRegister(PageViews)
	prometheus.MustRegister(LegalFetches)
	prometheus.MustRegister(DetectedOS)
	prometheus.MustRegister(DownloadClicks)
}

// DownloadCounter reads persisted download totals
type DownloadCounter interface {
	GetDownloadCounts(ctx context.Context) (map[string]int64, error)
}

// Collector provides methods to update metrics from storage
type Collector struct {
	store DownloadCounter
}

// NewCollector creates a new metrics collector. A nil store makes
// UpdateMetrics a no-op.
func NewCollector(store DownloadCounter) *Collector {
	return &Collector{
		store: store,
	}
}

// UpdateMetrics refreshes gauges from current storage state
// This is called on each /metrics scrape to ensure fresh data
func (c *Collector) UpdateMetrics() {
	if c.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	counts, err := c.store.GetDownloadCounts(ctx)
	if err != nil {
		// Don't fail the metrics request - serve stale metrics
		logrus.WithError(err).Warn("Failed to read download counts for metrics")
		return
	}

	DownloadClicks.Reset()
	for platform, n := range counts {
		DownloadClicks.WithLabelValues(platform).Set(float64(n))
	}
}
