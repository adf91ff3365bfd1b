package domain

import (
	"context"
	"errors"
)

var (
	ErrDocumentNotFound = errors.New("habit document not found")
	ErrHabitNotFound    = errors.New("habit not found")
	ErrDateNotTrackable = errors.New("date is outside the tracked range")
)

// StateRepository stores the single per-user document. Every write replaces
// one whole field; there are no partial updates and the last write wins.
type StateRepository interface {
	// Load returns the stored document or ErrDocumentNotFound.
	Load(ctx context.Context, docID string) (*Snapshot, error)

	// Bootstrap writes snap only if no document exists yet. It reports whether
	// the write happened.
	Bootstrap(ctx context.Context, docID string, snap *Snapshot) (bool, error)

	ReplaceHabits(ctx context.Context, docID string, habits []Habit) error
	ReplaceHistory(ctx context.Context, docID string, history HistoryMap) error
	ReplaceNotes(ctx context.Context, docID string, notes NotesMap) error
	ReplaceSettings(ctx context.Context, docID string, settings Settings) error

	// Reset overwrites every field at once.
	Reset(ctx context.Context, docID string, snap *Snapshot) error
}
