package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kg-3rd/grand-adventure-hub/internal/models"
)

// ReviewStore is the persistence surface the moderation workflow needs.
// The Postgres implementation lives in internal/repository.
type ReviewStore interface {
	Create(ctx context.Context, name string, rating models.Rating, comment string) error
	ListPending(ctx context.Context) ([]models.Review, error)
	ListApproved(ctx context.Context) ([]models.Review, error)
	Approve(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context) (models.ReviewSummary, error)
}

type ReviewService struct {
	reviews ReviewStore
	log     zerolog.Logger
}

func NewReviewService(reviews ReviewStore, log zerolog.Logger) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		log:     log,
	}
}

// Submit records a public review, always unapproved until moderated.
func (s *ReviewService) Submit(ctx context.Context, name string, rating models.Rating, comment string) error {
	name = strings.TrimSpace(name)
	comment = strings.TrimSpace(comment)
	if name == "" || comment == "" {
		return errors.New("name and comment are required")
	}
	return s.reviews.Create(ctx, name, rating, comment)
}

func (s *ReviewService) Pending(ctx context.Context) ([]models.Review, error) {
	return s.reviews.ListPending(ctx)
}

// Approve flips the moderation flag. Idempotent: approving an approved or
// missing id affects zero rows, which is not an error.
func (s *ReviewService) Approve(ctx context.Context, id int64) error {
	if err := s.reviews.Approve(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("review_id", id).Msg("review approved")
	return nil
}

func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("review_id", id).Msg("review deleted")
	return nil
}

// Approved returns the public view: approved reviews newest first plus the
// aggregate summary.
func (s *ReviewService) Approved(ctx context.Context) ([]models.Review, models.ReviewSummary, error) {
	reviews, err := s.reviews.ListApproved(ctx)
	if err != nil {
		return nil, models.ReviewSummary{}, err
	}
	summary, err := s.reviews.Summary(ctx)
	if err != nil {
		return nil, models.ReviewSummary{}, err
	}
	return reviews, summary, nil
}
