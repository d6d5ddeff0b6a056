package collections

import "context"

type Repository interface {
	// Transaction runs fn against a repository bound to a single database
	// transaction; both collection and mirror writes go through it.
	Transaction(ctx context.Context, fn func(Repository) error) error

	GetParticipant(ctx context.Context, participantID, eventID uint) (*Participant, error)

	// GetCollection returns nil (no error) when the key has no row.
	GetCollection(ctx context.Context, participantID uint, referenceMonth string) (*Collection, error)
	CreateCollection(ctx context.Context, collection *Collection) error
	UpdateCollectionAmount(ctx context.Context, id uint, amount float64) error
	DeleteCollection(ctx context.Context, id uint) error
	ListByEvent(ctx context.Context, eventID uint) ([]Entry, error)

	// GetLedgerEntryBySource returns nil (no error) when no mirror exists.
	GetLedgerEntryBySource(ctx context.Context, collectionID uint) (*LedgerEntry, error)
	CreateLedgerEntry(ctx context.Context, entry *LedgerEntry) error
	UpdateLedgerEntry(ctx context.Context, id uint, amount float64, description string) error
	DeleteLedgerEntryBySource(ctx context.Context, collectionID uint) error
}
