package importer

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// HistoryEntry is one recorded plan item.
type HistoryEntry struct {
	ID         int64     `json:"id"`
	SourcePath string    `json:"source_path"`
	DestPath   string    `json:"dest_path,omitempty"`
	Series     string    `json:"series,omitempty"`
	Event      string    `json:"event"` // a Status value
	Data       string    `json:"data"`  // JSON blob
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryFilter specifies criteria for listing history.
type HistoryFilter struct {
	SourcePath *string
	Event      *string
	Limit      int
}

// HistoryStore persists plan history.
type HistoryStore struct {
	db *sql.DB
}

// NewHistoryStore creates a history store.
func NewHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// querier abstracts *sql.DB and *sql.Tx for shared insert logic.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Add inserts a new history entry and sets its ID and CreatedAt.
func (s *HistoryStore) Add(h *HistoryEntry) error {
	return addHistory(s.db, h)
}

// AddAll inserts entries in a single transaction. Either every entry is
// stored or none is.
func (s *HistoryStore) AddAll(entries []*HistoryEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin history: %w", err)
	}
	for _, h := range entries {
		if err := addHistory(tx, h); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history: %w", err)
	}
	return nil
}

func addHistory(q querier, h *HistoryEntry) error {
	now := time.Now()
	if h.Data == "" {
		h.Data = "{}"
	}
	result, err := q.Exec(`
		INSERT INTO history (source_path, dest_path, series, event, data, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		h.SourcePath, h.DestPath, h.Series, h.Event, h.Data, now,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	h.ID = id
	h.CreatedAt = now
	return nil
}

// List returns history entries matching the filter, most recent first.
func (s *HistoryStore) List(f HistoryFilter) ([]*HistoryEntry, error) {
	var conditions []string
	var args []any

	if f.SourcePath != nil {
		conditions = append(conditions, "source_path = ?")
		args = append(args, *f.SourcePath)
	}
	if f.Event != nil {
		conditions = append(conditions, "event = ?")
		args = append(args, *f.Event)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT id, source_path, dest_path, series, event, data, created_at
		FROM history ` + whereClause + ` ORDER BY created_at DESC, id DESC`

	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*HistoryEntry
	for rows.Next() {
		h := &HistoryEntry{}
		if err := rows.Scan(&h.ID, &h.SourcePath, &h.DestPath, &h.Series, &h.Event, &h.Data, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		results = append(results, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return results, nil
}
