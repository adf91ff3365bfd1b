package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

const queryTimeout = 3 * time.Second

var _ domain.StateRepository = (*SQLStateRepository)(nil)

// SQLStateRepository stores each document as one row with a JSON column per
// field. Queries are written with ? placeholders and rebound per driver.
type SQLStateRepository struct {
	db *sqlx.DB
}

func NewSQLStateRepository(db *sqlx.DB) *SQLStateRepository {
	return &SQLStateRepository{db: db}
}

type documentRow struct {
	Habits   string `db:"habits"`
	History  string `db:"history"`
	Notes    string `db:"notes"`
	Settings string `db:"settings"`
}

type encodedDocument struct {
	habits, history, notes, settings string
}

func encodeDocument(snap *domain.Snapshot) (encodedDocument, error) {
	snap = snap.Clone()
	if snap == nil {
		snap = &domain.Snapshot{Habits: []domain.Habit{}, History: domain.HistoryMap{}, Notes: domain.NotesMap{}}
	}

	var enc encodedDocument
	var err error
	if enc.habits, err = encodeField(snap.Habits); err != nil {
		return enc, err
	}
	if enc.history, err = encodeField(snap.History); err != nil {
		return enc, err
	}
	if enc.notes, err = encodeField(snap.Notes); err != nil {
		return enc, err
	}
	if enc.settings, err = encodeField(snap.Settings); err != nil {
		return enc, err
	}
	return enc, nil
}

func encodeField(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal field: %w", err)
	}
	return string(data), nil
}

func (r *SQLStateRepository) Load(ctx context.Context, docID string) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var row documentRow
	query := r.db.Rebind(`SELECT habits, history, notes, settings FROM habit_documents WHERE id = ?`)
	if err := r.db.GetContext(ctx, &row, query, docID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("repository: load document failed: %w", err)
	}

	snap := &domain.Snapshot{}
	fields := []struct {
		name string
		raw  string
		dst  any
	}{
		{"habits", row.Habits, &snap.Habits},
		{"history", row.History, &snap.History},
		{"notes", row.Notes, &snap.Notes},
		{"settings", row.Settings, &snap.Settings},
	}
	for _, f := range fields {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return nil, fmt.Errorf("repository: corrupted %s for document %s: %w", f.name, docID, err)
		}
	}

	return snap.Clone(), nil
}

func (r *SQLStateRepository) Bootstrap(ctx context.Context, docID string, snap *domain.Snapshot) (bool, error) {
	enc, err := encodeDocument(snap)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	now := time.Now().UTC()
	query := r.db.Rebind(`
		INSERT INTO habit_documents (id, habits, history, notes, settings, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT (id) DO NOTHING`)

	res, err := r.db.ExecContext(ctx, query, docID, enc.habits, enc.history, enc.notes, enc.settings, now, now)
	if err != nil {
		return false, fmt.Errorf("repository: bootstrap document failed: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *SQLStateRepository) ReplaceHabits(ctx context.Context, docID string, habits []domain.Habit) error {
	if habits == nil {
		habits = []domain.Habit{}
	}
	return r.replaceField(ctx, docID, "habits", habits)
}

func (r *SQLStateRepository) ReplaceHistory(ctx context.Context, docID string, history domain.HistoryMap) error {
	if history == nil {
		history = domain.HistoryMap{}
	}
	return r.replaceField(ctx, docID, "history", history)
}

func (r *SQLStateRepository) ReplaceNotes(ctx context.Context, docID string, notes domain.NotesMap) error {
	if notes == nil {
		notes = domain.NotesMap{}
	}
	return r.replaceField(ctx, docID, "notes", notes)
}

func (r *SQLStateRepository) ReplaceSettings(ctx context.Context, docID string, settings domain.Settings) error {
	return r.replaceField(ctx, docID, "settings", settings)
}

// replaceField overwrites one column. column is always one of the fixed
// field names above, never user input.
func (r *SQLStateRepository) replaceField(ctx context.Context, docID, column string, value any) error {
	encoded, err := encodeField(value)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(fmt.Sprintf(
		`UPDATE habit_documents SET %s = ?, version = version + 1, updated_at = ? WHERE id = ?`, column))

	res, err := r.db.ExecContext(ctx, query, encoded, time.Now().UTC(), docID)
	if err != nil {
		return fmt.Errorf("repository: replace %s failed: %w", column, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *SQLStateRepository) Reset(ctx context.Context, docID string, snap *domain.Snapshot) error {
	enc, err := encodeDocument(snap)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	now := time.Now().UTC()
	query := r.db.Rebind(`
		INSERT INTO habit_documents (id, habits, history, notes, settings, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			habits = excluded.habits,
			history = excluded.history,
			notes = excluded.notes,
			settings = excluded.settings,
			version = habit_documents.version + 1,
			updated_at = excluded.updated_at`)

	if _, err := r.db.ExecContext(ctx, query, docID, enc.habits, enc.history, enc.notes, enc.settings, now, now); err != nil {
		return fmt.Errorf("repository: reset document failed: %w", err)
	}
	return nil
}

// Version reports how many writes the document has seen.
func (r *SQLStateRepository) Version(ctx context.Context, docID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var version int
	query := r.db.Rebind(`SELECT version FROM habit_documents WHERE id = ?`)
	if err := r.db.GetContext(ctx, &version, query, docID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrDocumentNotFound
		}
		return 0, err
	}
	return version, nil
}
