package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-talented-backend/internal/domain"
)

type ratingRepo struct {
	pool *pgxpool.Pool
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(pool *pgxpool.Pool) domain.RatingRepository {
	return &ratingRepo{pool: pool}
}

// Get retrieves the sender's rating of the receiver in the category.
func (r *ratingRepo) Get(ctx context.Context, senderID, receiverID int64, category string) (*domain.Rating, error) {
	query := `
		SELECT id, sender_id, receiver_id, category, rating
		FROM ratings
		WHERE sender_id = $1 AND receiver_id = $2 AND category = $3`

	var rating domain.Rating
	err := db(ctx, r.pool).QueryRow(ctx, query, senderID, receiverID, category).
		Scan(&rating.ID, &rating.SenderID, &rating.ReceiverID, &rating.Category, &rating.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

// Upsert inserts the rating, replacing the value on a repeated submission.
// The unique index on (sender_id, receiver_id, category) keeps one row per
// pair per category.
func (r *ratingRepo) Upsert(ctx context.Context, rating *domain.Rating) error {
	query := `
		INSERT INTO ratings (sender_id, receiver_id, category, rating)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (sender_id, receiver_id, category)
		DO UPDATE SET rating = EXCLUDED.rating
		RETURNING id`

	return db(ctx, r.pool).QueryRow(ctx, query,
		rating.SenderID, rating.ReceiverID, rating.Category, rating.Value,
	).Scan(&rating.ID)
}

// AverageFor recomputes the mean rating received in the category.
func (r *ratingRepo) AverageFor(ctx context.Context, receiverID int64, category string) (float64, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0)
		FROM ratings
		WHERE receiver_id = $1 AND category = $2`

	var avg float64
	err := db(ctx, r.pool).QueryRow(ctx, query, receiverID, category).Scan(&avg)
	return avg, err
}
