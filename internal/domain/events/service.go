package events

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, input CreateEventInput) (*Event, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Type == "" || input.Date.IsZero() || strings.TrimSpace(input.Location) == "" || input.ClientID == 0 {
		return nil, ErrMissingFields
	}

	if input.Type != TypeSimple && input.Type != TypeCollective {
		return nil, ErrInvalidEventType
	}

	// day granularity: an event today is still valid
	if dateOnly(input.Date).Before(dateOnly(time.Now())) {
		return nil, ErrPastEventDate
	}

	exists, err := s.repo.ClientExists(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	created := Event{
		Name:     name,
		Type:     input.Type,
		Date:     dateOnly(input.Date),
		Location: strings.TrimSpace(input.Location),
		Notes:    input.Notes,
		ClientID: input.ClientID,
	}

	if err := s.repo.CreateEvent(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) GetAll(ctx context.Context) ([]Event, error) {
	return s.repo.ListEvents(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*EventWithClient, error) {
	return s.repo.GetEventByID(ctx, id)
}

func (s *Service) AddParticipant(ctx context.Context, eventID uint, name string) (*Participant, error) {
	exists, err := s.repo.EventExists(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrEventNotFound
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	created := Participant{EventID: eventID, Name: name}
	if err := s.repo.CreateParticipant(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) GetParticipants(ctx context.Context, eventID uint) ([]Participant, error) {
	return s.repo.ListParticipants(ctx, eventID)
}

// CreatePaymentMonths inserts the generated month keys, skipping any already
// present, and returns the full persisted set sorted ascending.
func (s *Service) CreatePaymentMonths(ctx context.Context, eventID uint, startMonth string, termMonths int) ([]string, error) {
	startMonth = strings.TrimSpace(startMonth)
	if !IsReferenceMonth(startMonth) {
		return nil, ErrInvalidStartMonth
	}
	if !isValidTerm(termMonths) {
		return nil, ErrInvalidTermMonths
	}

	exists, err := s.repo.EventExists(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrEventNotFound
	}

	if err := s.repo.InsertPaymentMonths(ctx, eventID, monthSequence(startMonth, termMonths)); err != nil {
		return nil, err
	}

	return s.repo.ListPaymentMonths(ctx, eventID)
}

func (s *Service) GetPaymentMonths(ctx context.Context, eventID uint) ([]string, error) {
	return s.repo.ListPaymentMonths(ctx, eventID)
}

func (s *Service) CreateChecklistItem(ctx context.Context, eventID uint, text string, date *time.Time) (*ChecklistItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}

	created := ChecklistItem{EventID: eventID, Text: text, Date: date}
	if err := s.repo.CreateChecklistItem(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) ListChecklist(ctx context.Context, eventID uint) ([]ChecklistItem, error) {
	return s.repo.ListChecklistItems(ctx, eventID)
}

func (s *Service) ToggleChecklistItem(ctx context.Context, itemID uint) (*ChecklistItem, error) {
	item, err := s.repo.GetChecklistItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.Done = !item.Done
	if err := s.repo.SetChecklistItemDone(ctx, item.ID, item.Done); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) DeleteChecklistItem(ctx context.Context, itemID uint) error {
	deleted, err := s.repo.DeleteChecklistItem(ctx, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrChecklistItemNotFound
	}
	return nil
}

func (s *Service) CreateGroupItem(ctx context.Context, eventID uint, text string) (*GroupItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}

	created := GroupItem{EventID: eventID, Text: text}
	if err := s.repo.CreateGroupItem(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) ListGroupItems(ctx context.Context, eventID uint) ([]GroupItem, error) {
	return s.repo.ListGroupItems(ctx, eventID)
}

func (s *Service) DeleteGroupItem(ctx context.Context, itemID uint) error {
	deleted, err := s.repo.DeleteGroupItem(ctx, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGroupItemNotFound
	}
	return nil
}

func dateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
