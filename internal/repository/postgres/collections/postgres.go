package collections

import (
	"context"
	"errors"

	collectionsdomain "event-manager-go/internal/domain/collections"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(collectionsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetParticipant(ctx context.Context, participantID, eventID uint) (*collectionsdomain.Participant, error) {
	var participant collectionsdomain.Participant
	err := r.db.WithContext(ctx).
		Table("participants").
		Where("id = ? AND event_id = ?", participantID, eventID).
		Take(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, collectionsdomain.ErrParticipantNotFound
		}
		return nil, err
	}
	return &participant, nil
}

func (r *PostgresRepository) GetCollection(ctx context.Context, participantID uint, referenceMonth string) (*collectionsdomain.Collection, error) {
	var collection collectionsdomain.Collection
	err := r.db.WithContext(ctx).
		Where("participant_id = ? AND reference_month = ?", participantID, referenceMonth).
		Take(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collection, nil
}

func (r *PostgresRepository) CreateCollection(ctx context.Context, collection *collectionsdomain.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *PostgresRepository) UpdateCollectionAmount(ctx context.Context, id uint, amount float64) error {
	return r.db.WithContext(ctx).
		Model(&collectionsdomain.Collection{}).
		Where("id = ?", id).
		Update("amount", amount).Error
}

func (r *PostgresRepository) DeleteCollection(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&collectionsdomain.Collection{}, id).Error
}

func (r *PostgresRepository) ListByEvent(ctx context.Context, eventID uint) ([]collectionsdomain.Entry, error) {
	entries := make([]collectionsdomain.Entry, 0)
	err := r.db.WithContext(ctx).
		Table("collections").
		Select("collections.participant_id, collections.reference_month, collections.amount").
		Joins("JOIN participants ON participants.id = collections.participant_id").
		Where("participants.event_id = ?", eventID).
		Order("collections.participant_id asc, collections.reference_month asc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresRepository) GetLedgerEntryBySource(ctx context.Context, collectionID uint) (*collectionsdomain.LedgerEntry, error) {
	var entry collectionsdomain.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("source_type = ? AND source_id = ?", "collection", collectionID).
		Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PostgresRepository) CreateLedgerEntry(ctx context.Context, entry *collectionsdomain.LedgerEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *PostgresRepository) UpdateLedgerEntry(ctx context.Context, id uint, amount float64, description string) error {
	return r.db.WithContext(ctx).
		Model(&collectionsdomain.LedgerEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"amount":      amount,
			"description": description,
		}).Error
}

func (r *PostgresRepository) DeleteLedgerEntryBySource(ctx context.Context, collectionID uint) error {
	return r.db.WithContext(ctx).
		Where("source_type = ? AND source_id = ?", "collection", collectionID).
		Delete(&collectionsdomain.LedgerEntry{}).Error
}
