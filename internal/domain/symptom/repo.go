package symptom

import "context"

type Repository interface {
	Create(ctx context.Context, r *Report) error
	DeleteAll(ctx context.Context) error
}
