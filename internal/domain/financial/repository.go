package financial

import "context"

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	ListByEvent(ctx context.Context, eventID uint) ([]TransactionWithCategory, error)
	// ListSettledByEvent returns settled transactions with a non-null paidAt,
	// ordered by paidAt ascending.
	ListSettledByEvent(ctx context.Context, eventID uint) ([]Transaction, error)
	EventExists(ctx context.Context, id uint) (bool, error)
	CategoryExists(ctx context.Context, id uint) (bool, error)
}
