package events

import "context"

type Repository interface {
	CreateEvent(ctx context.Context, event *Event) error
	ListEvents(ctx context.Context) ([]Event, error)
	GetEventByID(ctx context.Context, id uint) (*EventWithClient, error)
	EventExists(ctx context.Context, id uint) (bool, error)
	ClientExists(ctx context.Context, id uint) (bool, error)

	CreateParticipant(ctx context.Context, participant *Participant) error
	ListParticipants(ctx context.Context, eventID uint) ([]Participant, error)

	InsertPaymentMonths(ctx context.Context, eventID uint, months []string) error
	ListPaymentMonths(ctx context.Context, eventID uint) ([]string, error)

	CreateChecklistItem(ctx context.Context, item *ChecklistItem) error
	ListChecklistItems(ctx context.Context, eventID uint) ([]ChecklistItem, error)
	GetChecklistItem(ctx context.Context, id uint) (*ChecklistItem, error)
	SetChecklistItemDone(ctx context.Context, id uint, done bool) error
	DeleteChecklistItem(ctx context.Context, id uint) (bool, error)

	CreateGroupItem(ctx context.Context, item *GroupItem) error
	ListGroupItems(ctx context.Context, eventID uint) ([]GroupItem, error)
	DeleteGroupItem(ctx context.Context, id uint) (bool, error)
}
