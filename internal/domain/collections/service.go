package collections

import (
	"context"
	"fmt"
	"time"

	"event-manager-go/internal/domain/events"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpsertOrDelete records one participant's payment for a reference month.
// A zero amount clears the key; any positive amount upserts it. The mirrored
// financial_transactions row is kept in sync inside the same transaction so
// the general ledger never disagrees with the collections table.
func (s *Service) UpsertOrDelete(ctx context.Context, eventID, participantID uint, referenceMonth string, amount float64) (*UpsertResult, error) {
	if !events.IsReferenceMonth(referenceMonth) {
		return nil, ErrInvalidReferenceMonth
	}
	if amount < 0 {
		return nil, ErrNegativeAmount
	}

	participant, err := s.repo.GetParticipant(ctx, participantID, eventID)
	if err != nil {
		return nil, err
	}

	var result UpsertResult
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.GetCollection(ctx, participantID, referenceMonth)
		if err != nil {
			return err
		}

		if amount == 0 {
			result.Deleted = true
			if existing == nil {
				return nil
			}
			if err := tx.DeleteLedgerEntryBySource(ctx, existing.ID); err != nil {
				return err
			}
			return tx.DeleteCollection(ctx, existing.ID)
		}

		collection := existing
		if collection != nil {
			collection.Amount = amount
			if err := tx.UpdateCollectionAmount(ctx, collection.ID, amount); err != nil {
				return err
			}
		} else {
			collection = &Collection{
				ParticipantID:  participantID,
				ReferenceMonth: referenceMonth,
				Amount:         amount,
			}
			if err := tx.CreateCollection(ctx, collection); err != nil {
				return err
			}
		}

		description := fmt.Sprintf("Coleta - %s (%s)", participant.Name, referenceMonth)

		mirror, err := tx.GetLedgerEntryBySource(ctx, collection.ID)
		if err != nil {
			return err
		}
		if mirror != nil {
			if err := tx.UpdateLedgerEntry(ctx, mirror.ID, amount, description); err != nil {
				return err
			}
		} else {
			now := time.Now().UTC()
			entry := LedgerEntry{
				EventID:     eventID,
				Type:        "income",
				Description: description,
				Amount:      amount,
				Status:      "settled",
				PaidAt:      &now,
				SourceType:  "collection",
				SourceID:    &collection.ID,
			}
			if err := tx.CreateLedgerEntry(ctx, &entry); err != nil {
				return err
			}
		}

		result.Collection = collection
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) List(ctx context.Context, eventID uint) ([]Entry, error) {
	return s.repo.ListByEvent(ctx, eventID)
}
