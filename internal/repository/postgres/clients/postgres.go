package clients

import (
	"context"
	"errors"

	clientsdomain "event-manager-go/internal/domain/clients"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, client *clientsdomain.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *PostgresRepository) List(ctx context.Context) ([]clientsdomain.Client, error) {
	var items []clientsdomain.Client
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*clientsdomain.Client, error) {
	var client clientsdomain.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clientsdomain.ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *PostgresRepository) Update(ctx context.Context, client *clientsdomain.Client) error {
	return r.db.WithContext(ctx).
		Model(&clientsdomain.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"name":  client.Name,
			"phone": client.Phone,
			"notes": client.Notes,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&clientsdomain.Client{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&clientsdomain.Client{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
