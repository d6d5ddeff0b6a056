package categories

import (
	"context"
	"errors"

	categoriesdomain "event-manager-go/internal/domain/categories"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, category *categoriesdomain.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return categoriesdomain.ErrNameTaken
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]categoriesdomain.Category, error) {
	var items []categoriesdomain.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*categoriesdomain.Category, error) {
	var category categoriesdomain.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, categoriesdomain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) Update(ctx context.Context, category *categoriesdomain.Category) error {
	err := r.db.WithContext(ctx).
		Model(&categoriesdomain.Category{}).
		Where("id = ?", category.ID).
		Update("name", category.Name).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return categoriesdomain.ErrNameTaken
	}
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&categoriesdomain.Category{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&categoriesdomain.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) CountByName(ctx context.Context, name string, excludeID uint) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&categoriesdomain.Category{}).
		Where("lower(name) = lower(?)", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) CountTransactionsByCategoryID(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("financial_transactions").
		Where("category_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
