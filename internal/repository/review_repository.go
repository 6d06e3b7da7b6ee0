package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kg-3rd/grand-adventure-hub/internal/models"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, name string, rating models.Rating, comment string) error {
	const query = `
		INSERT INTO reviews (name, rating, comment, approved, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())
	`
	_, err := r.pool.Exec(ctx, query, name, int(rating), comment)
	return err
}

func (r *ReviewRepository) ListPending(ctx context.Context) ([]models.Review, error) {
	return r.list(ctx, false)
}

func (r *ReviewRepository) ListApproved(ctx context.Context) ([]models.Review, error) {
	return r.list(ctx, true)
}

func (r *ReviewRepository) list(ctx context.Context, approved bool) ([]models.Review, error) {
	const query = `
		SELECT id, name, rating, comment, approved, created_at
		FROM reviews
		WHERE approved = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, approved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReviews(rows)
}

func scanReviews(rows pgx.Rows) ([]models.Review, error) {
	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(
			&review.ID,
			&review.Name,
			&review.Rating,
			&review.Comment,
			&review.Approved,
			&review.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// Approve sets the moderation flag. Updating an already-approved or missing
// row affects zero rows, which the store does not treat as an error.
func (r *ReviewRepository) Approve(ctx context.Context, id int64) error {
	const query = `UPDATE reviews SET approved = TRUE WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM reviews WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *ReviewRepository) Summary(ctx context.Context) (models.ReviewSummary, error) {
	const query = `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE approved = TRUE
	`
	var summary models.ReviewSummary
	row := r.pool.QueryRow(ctx, query)
	if err := row.Scan(&summary.AvgRating, &summary.TotalReviews); err != nil {
		return models.ReviewSummary{}, err
	}
	return summary, nil
}
