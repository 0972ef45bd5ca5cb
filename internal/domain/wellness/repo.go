package wellness

import "context"

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	DeleteAll(ctx context.Context) error
}
