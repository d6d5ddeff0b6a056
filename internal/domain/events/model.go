package events

import "time"

const (
	TypeSimple     = "simple"
	TypeCollective = "collective"
)

type Event struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Type      string    `gorm:"not null"`
	Date      time.Time `gorm:"type:date;not null"`
	Location  string    `gorm:"not null"`
	Notes     *string   `gorm:"type:text"`
	ClientID  uint      `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type EventWithClient struct {
	Event
	ClientName string
}

type Participant struct {
	ID        uint      `gorm:"primaryKey"`
	EventID   uint      `gorm:"index;not null"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type PaymentMonth struct {
	ID      uint   `gorm:"primaryKey"`
	EventID uint   `gorm:"uniqueIndex:uq_event_payment_months;not null"`
	Month   string `gorm:"uniqueIndex:uq_event_payment_months;not null"`
}

func (PaymentMonth) TableName() string {
	return "event_payment_months"
}

type ChecklistItem struct {
	ID        uint       `gorm:"primaryKey"`
	EventID   uint       `gorm:"index;not null"`
	Text      string     `gorm:"not null"`
	Date      *time.Time `gorm:"type:date"`
	Done      bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (ChecklistItem) TableName() string {
	return "event_checklist_items"
}

type GroupItem struct {
	ID        uint      `gorm:"primaryKey"`
	EventID   uint      `gorm:"index;not null"`
	Text      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (GroupItem) TableName() string {
	return "event_group_items"
}

type CreateEventInput struct {
	Name     string
	Type     string
	Date     time.Time
	Location string
	Notes    *string
	ClientID uint
}
