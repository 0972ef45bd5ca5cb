package advisory

import "context"

type Repository interface {
	Create(ctx context.Context, a *Advisory) error
	DeleteAll(ctx context.Context) error
}
