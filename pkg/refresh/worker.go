// Package refresh keeps cached legal documents warm so visitors rarely wait
// on the upstream document host.
package refresh

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/reachx/reach-site/pkg/legal"
)

// Refresher re-fetches documents into the cache
type Refresher interface {
	Refresh(ctx context.Context, slug legal.Slug) error
	Slugs() []legal.Slug
}

// WorkerConfig configures the refresh worker
type WorkerConfig struct {
	Interval time.Duration // How often to refresh every document
	Timeout  time.Duration // Upper bound for one refresh cycle
}

// Worker periodically refreshes legal documents
type Worker struct {
	config    *WorkerConfig
	documents Refresher
}

// NewWorker creates a new refresh worker
func NewWorker(config *WorkerConfig, documents Refresher) *Worker {
	return &Worker{
		config:    config,
		documents: documents,
	}
}

// Run refreshes immediately and then on every tick until ctx is done
func (w *Worker) Run(ctx context.Context) error {
	logrus.WithFields(logrus.Fields{
		"interval": w.config.Interval.String(),
		"slugs":    w.documents.Slugs(),
	}).Info("Starting legal document refresher")

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	w.refreshAll(ctx)

	for {
		select {
		case <-ticker.C:
			w.refreshAll(ctx)
		case <-ctx.Done():
			logrus.Info("Legal document refresher stopped")
			return nil
		}
	}
}

// refreshAll refreshes every document concurrently. A failing document does
// not cancel the others.
func (w *Worker) refreshAll(ctx context.Context) (refreshed, failed int) {
	timeout := w.config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var ok, errs atomic.Int32
	var g errgroup.Group
	for _, slug := range w.documents.Slugs() {
		slug := slug
		g.Go(func() error {
			if err := w.documents.Refresh(ctx, slug); err != nil {
				logrus.WithFields(logrus.Fields{
					"slug":  slug,
					"error": err,
				}).Warn("Failed to refresh legal document")
				errs.Add(1)
				return nil
			}
			ok.Add(1)
			return nil
		})
	}
	g.Wait()

	refreshed, failed = int(ok.Load()), int(errs.Load())
	logrus.WithFields(logrus.Fields{
		"refreshed": refreshed,
		"failed":    failed,
	}).Debug("Refresh cycle complete")

	return refreshed, failed
}
