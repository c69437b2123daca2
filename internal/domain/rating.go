package domain

import "context"

// Rating categories
const (
	RatingCategoryApplicant = "applicant"
	RatingCategoryJob       = "job"
)

// NoRating is the sentinel returned when no rating exists for a
// (sender, receiver, category) tuple.
const NoRating = -1

// Rating is one party's rating of another. At most one row exists per
// (sender, receiver, category); repeated submissions overwrite the value.
type Rating struct {
	ID         int64   `json:"id"`
	SenderID   int64   `json:"sender_id"`
	ReceiverID int64   `json:"receiver_id"`
	Category   string  `json:"category"`
	Value      float64 `json:"rating"`
}

type RatingRepository interface {
	Get(ctx context.Context, senderID, receiverID int64, category string) (*Rating, error)
	Upsert(ctx context.Context, rating *Rating) error
	AverageFor(ctx context.Context, receiverID int64, category string) (float64, error)
}

// RatingUsecase is the rating aggregator: eligibility-gated upsert plus
// atomic recomputation of the receiver's mean rating.
type RatingUsecase interface {
	Rate(ctx context.Context, senderID int64, senderRole string, receiverID int64, value float64) error
	Get(ctx context.Context, senderID int64, senderRole string, receiverID int64) (float64, error)
}
