package preventive

import "context"

type Repository interface {
	InsertMany(ctx context.Context, rules []*Rule) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}
