package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/studiowebux/pickli/internal/types"
)

// Manager persists completed dialog invocations. The log is append-only
// with respect to dialogs: it is never read back to seed checked state,
// so every new dialog starts from the caller-supplied selection.
type Manager struct {
	db *sql.DB
}

// NewManager opens (and creates if needed) the history database
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	m := &Manager{db: db}
	if err := m.initSchema(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS invocations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		title TEXT NOT NULL,
		source TEXT NOT NULL,
		mode TEXT NOT NULL,
		item_count INTEGER NOT NULL,
		selected_count INTEGER NOT NULL,
		selected_ids TEXT NOT NULL,
		outcome TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_invocations_timestamp ON invocations(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_invocations_outcome ON invocations(outcome);
	`

	if _, err := m.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return nil
}

// Save appends one completed dialog session to the log
func (m *Manager) Save(title, source string, mode types.SelectionMode, itemCount int, result types.Result) error {
	idsJSON, err := json.Marshal(result.SelectedIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal selected ids: %w", err)
	}

	query := `
		INSERT INTO invocations (
			timestamp, title, source, mode, item_count, selected_count, selected_ids, outcome
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	// Format timestamp for SQLite in local time
	timestampStr := time.Now().Local().Format("2006-01-02 15:04:05")

	_, err = m.db.Exec(query,
		timestampStr,
		title,
		source,
		string(mode),
		itemCount,
		len(result.SelectedIDs),
		string(idsJSON),
		string(result.Outcome),
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	return nil
}

// Load returns all logged invocations, newest first
func (m *Manager) Load() ([]types.HistoryEntry, error) {
	query := `
		SELECT id, timestamp, title, source, mode, item_count, selected_count, selected_ids, outcome
		FROM invocations
		ORDER BY timestamp DESC, id DESC
	`

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var e types.HistoryEntry
		var idsJSON string

		err := rows.Scan(
			&e.ID,
			&e.Timestamp,
			&e.Title,
			&e.Source,
			&e.Mode,
			&e.ItemCount,
			&e.SelectedCount,
			&idsJSON,
			&e.Outcome,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		if err := json.Unmarshal([]byte(idsJSON), &e.SelectedIDs); err != nil {
			e.SelectedIDs = nil
		}

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return entries, nil
}

// Clear removes every logged invocation
func (m *Manager) Clear() error {
	if _, err := m.db.Exec(`DELETE FROM invocations`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}
