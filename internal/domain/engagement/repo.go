package engagement

import "context"

type ReminderRepository interface {
	Create(ctx context.Context, r *Reminder) error
	DeleteAll(ctx context.Context) error
}

type AdherenceRepository interface {
	Create(ctx context.Context, a *Adherence) error
	DeleteAll(ctx context.Context) error
}
