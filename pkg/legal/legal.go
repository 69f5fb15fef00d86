// Package legal loads the privacy policy and terms of service from their
// remote markdown sources, substituting a built-in copy when a fetch fails.
package legal

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reachx/reach-site/pkg/metrics"
	"github.com/reachx/reach-site/pkg/storage"
	"github.com/sirupsen/logrus"
)

// Slug identifies a legal document
type Slug string

const (
	Privacy Slug = "privacy"
	Terms   Slug = "terms"
)

// Slugs lists the legal documents in tab order
var Slugs = []Slug{Privacy, Terms}

// Title is the tab label for the document
func (s Slug) Title() string {
	switch s {
	case Privacy:
		return "Privacy Policy"
	case Terms:
		return "Terms of Service"
	default:
		return string(s)
	}
}

// Path is the site route that renders the document
func (s Slug) Path() string {
	return "/legal/" + string(s)
}

// Source records where a document's markdown came from
type Source string

const (
	SourceRemote   Source = "fetched"
	SourceCache    Source = "cached"
	SourceFallback Source = "fallback"
)

// maxDocumentBytes caps the size of a remote document
const maxDocumentBytes = 1 << 20

var (
	// ErrFetchFailed covers transport errors and non-2xx responses
	ErrFetchFailed = errors.New("legal document fetch failed")
	// ErrUnknownDocument is returned for a slug with no configured source
	ErrUnknownDocument = errors.New("unknown legal document")
)

//go:embed fallback/privacy.md
var privacyFallback string

//go:embed fallback/terms.md
var termsFallback string

// Fallback returns the built-in copy of a document
func Fallback(slug Slug) string {
	switch slug {
	case Privacy:
		return privacyFallback
	case Terms:
		return termsFallback
	default:
		return ""
	}
}

// Document is the markdown to render for a legal page.
// Err is set when the fallback was substituted; views do not display it.
type Document struct {
	Slug     Slug
	Markdown string
	Source   Source
	Err      error
}

// Fallback reports whether the built-in copy is being shown
func (d *Document) Fallback() bool {
	return d.Source == SourceFallback
}

// Cache stores successfully fetched documents
type Cache interface {
	GetDocument(ctx context.Context, slug string) (*storage.CachedDocument, error)
	StoreDocument(ctx context.Context, doc *storage.CachedDocument, ttl time.Duration) error
}

// FetcherConfig configures a Fetcher
type FetcherConfig struct {
	URLs     map[Slug]string
	Timeout  time.Duration
	Cache    Cache // optional
	CacheTTL time.Duration
	Client   *http.Client // optional, overrides Timeout
}

// Fetcher retrieves legal documents
type Fetcher struct {
	client   *http.Client
	urls     map[Slug]string
	cache    Cache
	cacheTTL time.Duration
}

// NewFetcher creates a Fetcher. A nil Cache disables caching.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	urls := make(map[Slug]string, len(cfg.URLs))
	for slug, u := range cfg.URLs {
		urls[slug] = u
	}

	return &Fetcher{
		client:   client,
		urls:     urls,
		cache:    cfg.Cache,
		cacheTTL: cfg.CacheTTL,
	}
}

// Fetch returns the document for slug. Remote failures never surface as an
// error: the document falls back to the built-in copy with Err set.
func (f *Fetcher) Fetch(ctx context.Context, slug Slug) (*Document, error) {
	sourceURL, ok := f.urls[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDocument, slug)
	}

	if cached := f.cached(ctx, slug); cached != nil {
		metrics.LegalFetches.WithLabelValues(string(slug), string(SourceCache)).Inc()
		return &Document{Slug: slug, Markdown: cached.Markdown, Source: SourceCache}, nil
	}

	markdown, err := f.fetchRemote(ctx, sourceURL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"slug":  slug,
			"url":   sourceURL,
			"error": err,
		}).Warn("Serving fallback legal document")
		metrics.LegalFetches.WithLabelValues(string(slug), string(SourceFallback)).Inc()

		return &Document{
			Slug:     slug,
			Markdown: Fallback(slug),
			Source:   SourceFallback,
			Err:      err,
		}, nil
	}

	metrics.LegalFetches.WithLabelValues(string(slug), string(SourceRemote)).Inc()
	f.store(ctx, slug, sourceURL, markdown)

	return &Document{Slug: slug, Markdown: markdown, Source: SourceRemote}, nil
}

// Refresh fetches a document from its source and replaces the cached copy.
// Failed fetches leave the cache untouched.
func (f *Fetcher) Refresh(ctx context.Context, slug Slug) error {
	sourceURL, ok := f.urls[slug]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDocument, slug)
	}

	markdown, err := f.fetchRemote(ctx, sourceURL)
	if err != nil {
		return err
	}

	if f.cache == nil {
		return nil
	}

	doc := &storage.CachedDocument{
		Slug:      string(slug),
		Markdown:  markdown,
		SourceURL: sourceURL,
		FetchedAt: time.Now(),
	}
	if err := f.cache.StoreDocument(ctx, doc, f.cacheTTL); err != nil {
		return fmt.Errorf("failed to cache %s: %w", slug, err)
	}
	return nil
}

// Slugs returns the configured documents in tab order
func (f *Fetcher) Slugs() []Slug {
	slugs := make([]Slug, 0, len(f.urls))
	for _, slug := range Slugs {
		if _, ok := f.urls[slug]; ok {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}

func (f *Fetcher) fetchRemote(ctx context.Context, sourceURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "text/plain, text/markdown;q=0.9, */*;q=0.1")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}
	if len(body) > maxDocumentBytes {
		return "", fmt.Errorf("%w: document exceeds %d bytes", ErrFetchFailed, maxDocumentBytes)
	}

	return string(body), nil
}

func (f *Fetcher) cached(ctx context.Context, slug Slug) *storage.CachedDocument {
	if f.cache == nil {
		return nil
	}

	doc, err := f.cache.GetDocument(ctx, string(slug))
	if err != nil {
		// Cache trouble only costs a network round trip
		logrus.WithError(err).WithField("slug", slug).Warn("Legal document cache lookup failed")
		return nil
	}
	return doc
}

func (f *Fetcher) store(ctx context.Context, slug Slug, sourceURL, markdown string) {
	if f.cache == nil {
		return
	}

	doc := &storage.CachedDocument{
		Slug:      string(slug),
		Markdown:  markdown,
		SourceURL: sourceURL,
		FetchedAt: time.Now(),
	}
	if err := f.cache.StoreDocument(ctx, doc, f.cacheTTL); err != nil {
		logrus.WithError(err).WithField("slug", slug).Warn("Failed to cache legal document")
	}
}
