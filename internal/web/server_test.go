package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadefarragut/PortfolioV2/internal/analytics"
	"github.com/cadefarragut/PortfolioV2/internal/contact"
	"github.com/cadefarragut/PortfolioV2/internal/portfolio"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type visit struct {
	ip, ua, path string
}

type fakeTracker struct {
	mu      sync.Mutex
	visits  []visit
	filters []analytics.FilterStat
	cleaned time.Duration
}

func (f *fakeTracker) HashIP(ip string) string { return "hash-" + ip }

func (f *fakeTracker) RecordVisit(_ context.Context, ip, ua, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visits = append(f.visits, visit{ip, ua, path})
	return nil
}

func (f *fakeTracker) RecordFilter(_ context.Context, gallery, category string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, analytics.FilterStat{Gallery: gallery, Category: category, Count: 1})
	return nil
}

func (f *fakeTracker) Stats(context.Context) (*analytics.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &analytics.Stats{TotalVisitors: int64(len(f.visits)), TopFilters: f.filters}, nil
}

func (f *fakeTracker) Cleanup(_ context.Context, retention time.Duration) (int64, error) {
	f.cleaned = retention
	return 3, nil
}

type fakeMailer struct {
	got contact.Message
	err error
}

func (m *fakeMailer) Send(_ context.Context, msg contact.Message) error {
	m.got = msg
	if m.err != nil {
		return m.err
	}
	return msg.Validate()
}

func newTestHandler(t *testing.T, opts Options) http.Handler {
	t.Helper()
	if opts.Content.Projects == nil {
		opts.Content = portfolio.Default()
	}
	opts.Logger = log.New(io.Discard, "", 0)
	h, err := New(opts).Handler()
	require.NoError(t, err)
	return h
}

func get(t *testing.T, h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func postForm(h http.Handler, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHome_RendersAllSections(t *testing.T) {
	h := newTestHandler(t, Options{})

	w := get(t, h, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	for _, id := range []string{`id="about"`, `id="projects"`, `id="experience"`, `id="contact"`} {
		assert.Contains(t, body, id)
	}
	assert.Contains(t, body, portfolio.DefaultProfile.Name)
	for _, p := range portfolio.DefaultProjects {
		assert.Contains(t, body, p.Title)
	}
	for _, e := range portfolio.DefaultExperience {
		assert.Contains(t, body, e.Role)
	}
	assert.Contains(t, body, "Automated Bartender thumbnail")
	assert.Contains(t, body, "90% proficiency")
	assert.Contains(t, body, `width: 90%`)
	assert.NotContains(t, body, emptyProjectsMessage)
	assert.NotContains(t, body, emptySkillsMessage)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestHome_ProjectFilterFromQuery(t *testing.T) {
	h := newTestHandler(t, Options{})

	w := get(t, h, "/?project=TypeScript")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "LeetifyTracker")
	assert.NotContains(t, body, "Automated Bartender")
	assert.Contains(t, body, "React")
}

func TestProjectsFragment(t *testing.T) {
	h := newTestHandler(t, Options{})

	w := get(t, h, "/projects?filter=Go")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Personal Portfolio Website")
	assert.NotContains(t, body, "LeetifyTracker")
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, `class="filter active"`)
}

func TestProjectsFragment_UnknownCategory(t *testing.T) {
	h := newTestHandler(t, Options{})

	w := get(t, h, "/projects?filter=COBOL")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, emptyProjectsMessage)
	assert.NotContains(t, body, `class="card project"`)
	assert.NotContains(t, body, `class="filter active"`)
}

func TestProjectCard_OptionalLinks(t *testing.T) {
	content := portfolio.Default()
	content.Projects = []portfolio.Project{
		{ID: "a", Title: "Linked", Technologies: []string{"Go"}, DemoURL: "https://demo.example.com", RepoURL: "https://github.com/x/a"},
		{ID: "b", Title: "Bare", Technologies: []string{"Rust"}},
	}
	h := newTestHandler(t, Options{Content: content})

	body := get(t, h, "/projects?filter=Go").Body.String()
	assert.Contains(t, body, "Live Demo")
	assert.Contains(t, body, "https://demo.example.com")
	assert.Contains(t, body, ">Code<")

	body = get(t, h, "/projects?filter=Rust").Body.String()
	assert.Contains(t, body, "Bare")
	assert.NotContains(t, body, "Live Demo")
	assert.NotContains(t, body, ">Code<")
}

func TestSkillsFragment(t *testing.T) {
	h := newTestHandler(t, Options{})

	body := get(t, h, "/skills?filter=tools").Body.String()
	assert.Contains(t, body, "JIRA")
	assert.Contains(t, body, "Linux")
	assert.NotContains(t, body, "Python")
	assert.Contains(t, body, ">Tools<")

	body = get(t, h, "/skills?filter=database").Body.String()
	assert.Contains(t, body, emptySkillsMessage)
}

func TestAPIProjects(t *testing.T) {
	content := portfolio.Default()
	content.Projects = []portfolio.Project{
		{ID: "x", Title: "X", Technologies: []string{"A", "B"}},
		{ID: "y", Title: "Y", Technologies: []string{"B"}},
	}
	h := newTestHandler(t, Options{Content: content})

	var resp struct {
		Filter     string              `json:"filter"`
		Categories []string            `json:"categories"`
		Projects   []portfolio.Project `json:"projects"`
		Empty      bool                `json:"empty"`
	}

	w := get(t, h, "/api/projects?filter=B")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "B", resp.Filter)
	assert.Equal(t, []string{"all", "A", "B"}, resp.Categories)
	require.Len(t, resp.Projects, 2)
	assert.Equal(t, "x", resp.Projects[0].ID)
	assert.Equal(t, "y", resp.Projects[1].ID)
	assert.False(t, resp.Empty)

	w = get(t, h, "/api/projects?filter=C")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Projects)
	assert.True(t, resp.Empty)
	assert.Contains(t, w.Body.String(), `"projects":[]`)

	w = get(t, h, "/api/projects")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, portfolio.All, resp.Filter)
	assert.Len(t, resp.Projects, 2)
}

func TestAPISkills(t *testing.T) {
	h := newTestHandler(t, Options{})

	var resp struct {
		Categories []string              `json:"categories"`
		Skills     []portfolio.TechSkill `json:"skills"`
	}
	w := get(t, h, "/api/skills?filter=framework")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Skills, 1)
	assert.Equal(t, "React", resp.Skills[0].Name)
	assert.Equal(t, []string{"all", "language", "tools", "framework"}, resp.Categories)
}

func TestTracking_VisitsAndFilters(t *testing.T) {
	tracker := &fakeTracker{}
	h := newTestHandler(t, Options{Tracker: tracker})

	get(t, h, "/?project=Go")
	get(t, h, "/skills?filter=tools")
	get(t, h, "/static/site.css")
	get(t, h, "/projects?filter=all")

	require.Len(t, tracker.visits, 3)
	assert.Equal(t, "/", tracker.visits[0].path)
	assert.Equal(t, "/skills", tracker.visits[1].path)

	assert.Equal(t, []analytics.FilterStat{
		{Gallery: galleryProjects, Category: "Go", Count: 1},
		{Gallery: gallerySkills, Category: "tools", Count: 1},
	}, tracker.filters)
}

func TestTracking_DoNotTrack(t *testing.T) {
	tracker := &fakeTracker{}
	h := newTestHandler(t, Options{Tracker: tracker})

	get(t, h, "/?project=Go", "DNT", "1")
	assert.Empty(t, tracker.visits)
	assert.Empty(t, tracker.filters)
}

func TestTracking_IgnoresUnknownCategories(t *testing.T) {
	tracker := &fakeTracker{}
	h := newTestHandler(t, Options{Tracker: tracker})

	get(t, h, "/projects?filter=not-a-category")
	get(t, h, "/skills?filter=tool")
	get(t, h, "/?project=language&skill=Go")

	assert.Len(t, tracker.visits, 3)
	assert.Empty(t, tracker.filters)
}

func TestStaticAndAssetDirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pic.txt"), []byte("pixels"), 0644))
	h := newTestHandler(t, Options{AssetDirs: map[string]string{
		"/images":    dir,
		"/resources": filepath.Join(dir, "missing"),
	}})

	w := get(t, h, "/static/site.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".filter-bar")

	w = get(t, h, "/images/pic.txt")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pixels", w.Body.String())

	assert.Equal(t, http.StatusNotFound, get(t, h, "/resources/resume.pdf").Code)
}

func TestNotFound(t *testing.T) {
	h := newTestHandler(t, Options{})

	w := get(t, h, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404 Not Found")
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t, Options{})

	w := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestPrivacy(t *testing.T) {
	h := newTestHandler(t, Options{Retention: 30 * 24 * time.Hour})

	w := get(t, h, "/privacy")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "30 days")
}

func TestContact(t *testing.T) {
	form := url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}}

	t.Run("no mailer", func(t *testing.T) {
		var logs bytes.Buffer
		h, err := New(Options{Content: portfolio.Default(), Logger: log.New(&logs, "", 0)}).Handler()
		require.NoError(t, err)
		w := postForm(h, "/contact", form)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "error sending your message")
		assert.Contains(t, logs.String(), contact.ErrNotConfigured.Error())
	})

	t.Run("sent", func(t *testing.T) {
		m := &fakeMailer{}
		h := newTestHandler(t, Options{Mailer: m})
		w := postForm(h, "/contact", form)
		assert.Contains(t, w.Body.String(), "Thank you for your message!")
		assert.Equal(t, contact.Message{Name: "Ada", Email: "ada@example.com", Body: "Hi"}, m.got)
	})

	t.Run("invalid", func(t *testing.T) {
		h := newTestHandler(t, Options{Mailer: &fakeMailer{}})
		w := postForm(h, "/contact", url.Values{"fullName": {"Ada"}})
		assert.Contains(t, w.Body.String(), "Please fill in your name, email and message.")
	})

	t.Run("transport failure", func(t *testing.T) {
		h := newTestHandler(t, Options{Mailer: &fakeMailer{err: errors.New("down")}})
		w := postForm(h, "/contact", form)
		assert.Contains(t, w.Body.String(), "error sending your message")
	})

	t.Run("form fragment", func(t *testing.T) {
		h := newTestHandler(t, Options{})
		w := get(t, h, "/contact-form")
		assert.Contains(t, w.Body.String(), `name="fullName"`)
	})
}

func TestAdmin_DisabledWithoutCredentials(t *testing.T) {
	h := newTestHandler(t, Options{Tracker: &fakeTracker{}})
	assert.Equal(t, http.StatusNotFound, get(t, h, "/admin/login").Code)

	h = newTestHandler(t, Options{AdminUsername: "admin", AdminPassword: "pw"})
	assert.Equal(t, http.StatusNotFound, get(t, h, "/admin/login").Code)
}

func TestAdmin_LoginFlow(t *testing.T) {
	tracker := &fakeTracker{}
	h := newTestHandler(t, Options{
		Tracker:       tracker,
		Retention:     time.Hour,
		AdminUsername: "admin",
		AdminPassword: "s3cret",
	})

	assert.Equal(t, http.StatusOK, get(t, h, "/admin/login").Code)

	w := get(t, h, "/admin/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	w = postForm(h, "/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = postForm(h, "/admin/login", url.Values{"username": {"admin"}, "password": {"s3cret"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: session.Value})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Top filters")

	req = httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: session.Value})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_visitors"`)

	w = postForm(h, "/admin/privacy/cleanup", url.Values{}, &http.Cookie{Name: adminCookie, Value: session.Value})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Privacy cleanup complete","deleted":3}`, w.Body.String())
	assert.Equal(t, time.Hour, tracker.cleaned)

	w = postForm(h, "/admin/privacy/cleanup", url.Values{}, &http.Cookie{Name: adminCookie, Value: "forged"})
	assert.Equal(t, http.StatusFound, w.Code)
}
