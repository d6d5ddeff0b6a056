package collections

import "time"

type Collection struct {
	ID             uint      `gorm:"primaryKey"`
	ParticipantID  uint      `gorm:"uniqueIndex:uq_collections_participant_month;not null"`
	ReferenceMonth string    `gorm:"uniqueIndex:uq_collections_participant_month;not null"`
	Amount         float64   `gorm:"type:numeric(12,2);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// Participant is the slice of the participants table this ledger needs to
// resolve event membership and build mirror descriptions.
type Participant struct {
	ID      uint
	EventID uint
	Name    string
}

// LedgerEntry is the financial_transactions row mirrored from a collection
// write, keyed by (source_type='collection', source_id).
type LedgerEntry struct {
	ID          uint       `gorm:"primaryKey"`
	EventID     uint       `gorm:"not null"`
	Type        string     `gorm:"not null"`
	Description string     `gorm:"not null"`
	Amount      float64    `gorm:"type:numeric(12,2);not null"`
	Status      string     `gorm:"not null"`
	PaidAt      *time.Time `gorm:""`
	SourceType  string     `gorm:"not null"`
	SourceID    *uint      `gorm:""`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (LedgerEntry) TableName() string {
	return "financial_transactions"
}

// Entry is the flattened read model returned by List.
type Entry struct {
	ParticipantID  uint    `json:"participantId"`
	ReferenceMonth string  `json:"referenceMonth"`
	Amount         float64 `json:"amount"`
}

// UpsertResult reports either the surviving collection row or that the
// (participant, month) key was cleared.
type UpsertResult struct {
	Deleted    bool
	Collection *Collection
}
