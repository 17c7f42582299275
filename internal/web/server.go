// Package web serves the portfolio page, its HTMX fragments and the small
// JSON and admin surfaces around it.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cadefarragut/PortfolioV2/internal/analytics"
	"github.com/cadefarragut/PortfolioV2/internal/contact"
	"github.com/cadefarragut/PortfolioV2/internal/portfolio"
)

// Tracker records visits and filter selections. *analytics.Store satisfies it.
type Tracker interface {
	HashIP(ip string) string
	RecordVisit(ctx context.Context, ip, userAgent, path string) error
	RecordFilter(ctx context.Context, gallery, category string) error
	Stats(ctx context.Context) (*analytics.Stats, error)
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

type Options struct {
	Content portfolio.Content
	Logger  *log.Logger

	// Tracker is optional. Without it no visits are recorded and the admin
	// area is not mounted.
	Tracker   Tracker
	Retention time.Duration

	// Mailer is optional. Without it the contact form reports an error.
	Mailer contact.Mailer

	AdminUsername string
	AdminPassword string

	// AssetDirs maps URL prefixes to directories on disk, e.g. "/images" to
	// "images". Missing directories are skipped.
	AssetDirs map[string]string

	// Now defaults to time.Now.
	Now func() time.Time
}

type Server struct {
	content    portfolio.Content
	logger     *log.Logger
	tracker    Tracker
	retention  time.Duration
	mailer     contact.Mailer
	adminUser  string
	adminPass  string
	adminToken string
	assetDirs  map[string]string
	now        func() time.Time
}

func New(opts Options) *Server {
	s := &Server{
		content:   opts.Content,
		logger:    opts.Logger,
		tracker:   opts.Tracker,
		retention: opts.Retention,
		mailer:    opts.Mailer,
		adminUser: opts.AdminUsername,
		adminPass: opts.AdminPassword,
		assetDirs: opts.AssetDirs,
		now:       opts.Now,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.adminToken = uuid.NewString()
	return s
}

// Handler builds the gin engine with every route mounted.
func (s *Server) Handler() (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery(), requestID(), accessLog(s.logger))
	if s.tracker != nil {
		r.Use(visitorTracking(s.tracker, s.logger))
	}

	r.StaticFS("/static", http.FS(staticFiles()))
	for prefix, dir := range s.assetDirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			r.Static(prefix, dir)
		}
	}

	r.GET("/", s.home)
	r.GET("/projects", s.projectsFragment)
	r.GET("/skills", s.skillsFragment)
	r.GET("/api/projects", s.apiProjects)
	r.GET("/api/skills", s.apiSkills)
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)
	r.GET("/privacy", s.privacy)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.setupAdminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		s.renderError(c, http.StatusNotFound, "The page you are looking for does not exist.")
	})
	return r, nil
}

func (s *Server) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error", gin.H{
		"Status":  fmt.Sprintf("%d %s", status, http.StatusText(status)),
		"Message": message,
	})
}
