package emergency

import "context"

type Repository interface {
	Create(ctx context.Context, c *Card) error
	DeleteAll(ctx context.Context) error
}
