// Package analytics records privacy-conscious visitor and filter usage
// metrics in sqlite. Client IPs are only ever stored as salted hashes.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// FilterStat counts how often a category was picked in one gallery.
type FilterStat struct {
	Gallery  string `json:"gallery"`
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TotalSelections  int64           `json:"total_selections"`
	TopFilters       []FilterStat    `json:"top_filters"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

type Store struct {
	db     *sql.DB
	logger *log.Logger
	salt   string
	now    func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp);
CREATE TABLE IF NOT EXISTS filter_selections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	gallery TEXT NOT NULL,
	category TEXT NOT NULL,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// Open opens (or creates) the sqlite database at path and applies the schema.
func Open(ctx context.Context, path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// sqlite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create analytics tables: %w", err)
	}

	salt, err := randomHex(32)
	if err != nil {
		db.Close()
		return nil, err
	}

	logger.Println("Privacy: visitor tracking enabled with hashed IP addresses")
	return &Store{db: db, logger: logger, salt: salt, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// HashIP hashes an address with the store's salt. The same IP hashes to the
// same value for the lifetime of the store.
func (s *Store) HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + s.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().UTC())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

func (s *Store) RecordFilter(ctx context.Context, gallery, category string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO filter_selections (gallery, category, timestamp) VALUES (?, ?, ?)`,
		gallery, category, s.now().UTC())
	if err != nil {
		return fmt.Errorf("record filter: %w", err)
	}
	return nil
}

// Cleanup deletes visitor records older than retention and returns how many
// rows were removed.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().UTC().Add(-retention)
	result, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM filter_selections WHERE timestamp < ?`, cutoff); err != nil {
		return n, fmt.Errorf("cleanup filter selections: %w", err)
	}
	if n > 0 {
		s.logger.Printf("Privacy cleanup: removed %d visitor records older than %s", n, retention)
	}
	return n, nil
}

// Stats aggregates the dashboard numbers.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}},
		{&stats.TotalSelections, `SELECT COUNT(*) FROM filter_selections`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT gallery, category, COUNT(*) AS n
		FROM filter_selections
		GROUP BY gallery, category
		ORDER BY n DESC, gallery, category
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	for rows.Next() {
		var f FilterStat
		if err := rows.Scan(&f.Gallery, &f.Category, &f.Count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("stats: %w", err)
		}
		stats.TopFilters = append(stats.TopFilters, f)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	recent, err := s.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent
	return stats, nil
}

func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]VisitorMetric, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	defer rows.Close()

	var visitors []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("recent visitors: %w", err)
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
