package events

import (
	"context"
	"errors"

	eventsdomain "event-manager-go/internal/domain/events"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateEvent(ctx context.Context, event *eventsdomain.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *PostgresRepository) ListEvents(ctx context.Context) ([]eventsdomain.Event, error) {
	var items []eventsdomain.Event
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetEventByID(ctx context.Context, id uint) (*eventsdomain.EventWithClient, error) {
	var row struct {
		eventsdomain.Event
		ClientName string `gorm:"column:client_name"`
	}

	err := r.db.WithContext(ctx).
		Table("events").
		Select("events.*, clients.name AS client_name").
		Joins("JOIN clients ON clients.id = events.client_id").
		Where("events.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eventsdomain.ErrEventNotFound
		}
		return nil, err
	}

	return &eventsdomain.EventWithClient{Event: row.Event, ClientName: row.ClientName}, nil
}

func (r *PostgresRepository) EventExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&eventsdomain.Event{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) ClientExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("clients").Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CreateParticipant(ctx context.Context, participant *eventsdomain.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *PostgresRepository) ListParticipants(ctx context.Context, eventID uint) ([]eventsdomain.Participant, error) {
	var items []eventsdomain.Participant
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) InsertPaymentMonths(ctx context.Context, eventID uint, months []string) error {
	if len(months) == 0 {
		return nil
	}

	rows := make([]eventsdomain.PaymentMonth, 0, len(months))
	for _, month := range months {
		rows = append(rows, eventsdomain.PaymentMonth{EventID: eventID, Month: month})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *PostgresRepository) ListPaymentMonths(ctx context.Context, eventID uint) ([]string, error) {
	var months []string
	if err := r.db.WithContext(ctx).
		Model(&eventsdomain.PaymentMonth{}).
		Where("event_id = ?", eventID).
		Order("month asc").
		Pluck("month", &months).Error; err != nil {
		return nil, err
	}
	return months, nil
}

func (r *PostgresRepository) CreateChecklistItem(ctx context.Context, item *eventsdomain.ChecklistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *PostgresRepository) ListChecklistItems(ctx context.Context, eventID uint) ([]eventsdomain.ChecklistItem, error) {
	var items []eventsdomain.ChecklistItem
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetChecklistItem(ctx context.Context, id uint) (*eventsdomain.ChecklistItem, error) {
	var item eventsdomain.ChecklistItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eventsdomain.ErrChecklistItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) SetChecklistItemDone(ctx context.Context, id uint, done bool) error {
	return r.db.WithContext(ctx).
		Model(&eventsdomain.ChecklistItem{}).
		Where("id = ?", id).
		Update("done", done).Error
}

func (r *PostgresRepository) DeleteChecklistItem(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&eventsdomain.ChecklistItem{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CreateGroupItem(ctx context.Context, item *eventsdomain.GroupItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *PostgresRepository) ListGroupItems(ctx context.Context, eventID uint) ([]eventsdomain.GroupItem, error) {
	var items []eventsdomain.GroupItem
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) DeleteGroupItem(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&eventsdomain.GroupItem{}, id)
	return result.RowsAffected > 0, result.Error
}
