package site

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/reachx/reach-site/pkg/content"
	"github.com/reachx/reach-site/pkg/legal"
	"github.com/reachx/reach-site/pkg/metrics"
	"github.com/reachx/reach-site/pkg/platform"
	"github.com/reachx/reach-site/pkg/views"
)

// Home renders the landing page. ?billing=yearly selects annual prices.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	billing := content.ParseBilling(r.URL.Query().Get("billing"))

	metrics.PageViews.WithLabelValues("home").Inc()
	s.render(w, r, http.StatusOK, views.HomePage(views.HomeView{
		Version: content.LauncherVersion,
		Billing: billing,
		Year:    s.year(),
	}))
}

// Downloads renders the downloads page tailored to the visitor's OS
func (s *Server) Downloads(w http.ResponseWriter, r *http.Request) {
	detection := platform.DetectRequest(r.UserAgent())

	metrics.PageViews.WithLabelValues("downloads").Inc()
	metrics.DetectedOS.WithLabelValues(string(detection.OS)).Inc()

	s.render(w, r, http.StatusOK, views.DownloadsPage(views.DownloadsView{
		Detection: detection,
		Version:   s.opts.ReleaseVersion,
		Year:      s.year(),
	}))
}

// Download redirects to the platform's artifact. Only GET counts as a
// click; HEAD from prefetchers and link checkers does not.
func (s *Server) Download(w http.ResponseWriter, r *http.Request) {
	os, ok := platform.Parse(mux.Vars(r)["platform"])
	if !ok {
		s.NotFound(w, r)
		return
	}

	target, err := url.JoinPath(s.opts.DownloadBaseURL, string(os))
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	if s.store != nil && r.Method == http.MethodGet {
		if _, err := s.store.RecordDownload(r.Context(), string(os)); err != nil {
			// A lost click must not block the download
			logrus.WithFields(logrus.Fields{
				"request_id": RequestIDFromContext(r.Context()),
				"platform":   os,
				"error":      err,
			}).Warn("Failed to record download")
		}
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// LegalIndex sends /legal to the first legal document
func (s *Server) LegalIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, legal.Privacy.Path(), http.StatusFound)
}

// LegalDocument renders a legal document, remote when reachable and the
// built-in copy otherwise
func (s *Server) LegalDocument(w http.ResponseWriter, r *http.Request) {
	slug := legal.Slug(mux.Vars(r)["slug"])

	doc, err := s.documents.Fetch(r.Context(), slug)
	if errors.Is(err, legal.ErrUnknownDocument) {
		s.NotFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	body, err := s.renderer.Render(doc.Markdown)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	slugs := s.documents.Slugs()
	tabs := make([]views.LegalTab, 0, len(slugs))
	for _, other := range slugs {
		tabs = append(tabs, views.LegalTab{
			Label:  other.Title(),
			Href:   other.Path(),
			Active: other == slug,
		})
	}

	metrics.PageViews.WithLabelValues("legal_" + string(slug)).Inc()
	s.render(w, r, http.StatusOK, views.LegalPage(views.LegalView{
		Title:    slug.Title(),
		Tabs:     tabs,
		BodyHTML: body,
		Year:     s.year(),
	}))
}

// NotFound renders the not-found view for any unmatched path
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	metrics.PageViews.WithLabelValues("not_found").Inc()
	s.render(w, r, http.StatusNotFound, views.NotFoundPage(r.URL.Path))
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logrus.WithFields(logrus.Fields{
		"request_id": RequestIDFromContext(r.Context()),
		"path":       r.URL.Path,
		"error":      err,
	}).Error("Request failed")
	s.render(w, r, http.StatusInternalServerError, views.ServerErrorPage())
}
