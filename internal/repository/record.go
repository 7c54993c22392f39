package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/tinyrecords/tinyrecords-go/internal/model"
)

var (
	ErrTitleTooShort   = errors.New("title must be at least 3 characters")
	ErrInvalidPriority = errors.New("priority must be low, med or high")
)

// minTitleLen is measured in characters, not bytes.
const minTitleLen = 3

// RecordRepository is the in-memory, append-only record store. Records are
// kept in append order, which is the canonical list order. IDs come from a
// single counter shared by all owners.
type RecordRepository struct {
	mu      sync.Mutex
	records []model.Record
	nextID  int64
}

// NewRecordRepository creates an empty record store.
func NewRecordRepository() *RecordRepository {
	return &RecordRepository{}
}

// Append validates and stores a new record for the given owner. Rejected
// appends consume neither an id nor a slot. The id, timestamp and slice
// append happen under one lock so a reader never sees a half-written record.
func (r *RecordRepository) Append(ctx context.Context, email, title string, priority model.Priority) (model.Record, error) {
	if utf8.RuneCountInString(title) < minTitleLen {
		return model.Record{}, ErrTitleTooShort
	}
	if !priority.Valid() {
		return model.Record{}, ErrInvalidPriority
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	record := model.Record{
		ID:        strconv.FormatInt(r.nextID, 10),
		UserEmail: email,
		Title:     title,
		Priority:  priority,
		CreatedAt: time.Now().UTC(),
	}
	r.records = append(r.records, record)
	return record, nil
}

// ListByEmail returns a snapshot of the owner's records in append order.
// The result is always non-nil so it encodes as a JSON array.
func (r *RecordRepository) ListByEmail(ctx context.Context, email string) ([]model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]model.Record, 0)
	for _, rec := range r.records {
		if rec.UserEmail == email {
			result = append(result, rec)
		}
	}
	return result, nil
}
