package service

import (
	"context"
	"errors"

	"github.com/tinyrecords/tinyrecords-go/internal/model"
	"github.com/tinyrecords/tinyrecords-go/internal/repository"
)

var (
	ErrTitleTooShort   = errors.New("title too short")
	ErrInvalidPriority = errors.New("invalid priority")
)

// RecordService handles record business logic.
type RecordService struct {
	repo *repository.RecordRepository
}

// NewRecordService creates a new RecordService.
func NewRecordService(repo *repository.RecordRepository) *RecordService {
	return &RecordService{repo: repo}
}

// CreateRecord appends a record owned by the authenticated user.
func (s *RecordService) CreateRecord(ctx context.Context, email string, req model.CreateRecordRequest) (model.Record, error) {
	record, err := s.repo.Append(ctx, email, req.Title, req.Priority)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTitleTooShort):
			return model.Record{}, ErrTitleTooShort
		case errors.Is(err, repository.ErrInvalidPriority):
			return model.Record{}, ErrInvalidPriority
		}
		return model.Record{}, err
	}
	return record, nil
}

// ListRecords returns all records owned by the user, in creation order.
func (s *RecordService) ListRecords(ctx context.Context, email string) ([]model.Record, error) {
	return s.repo.ListByEmail(ctx, email)
}
