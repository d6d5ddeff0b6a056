package financial

import (
	"context"

	financialdomain "event-manager-go/internal/domain/financial"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, transaction *financialdomain.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *PostgresRepository) ListByEvent(ctx context.Context, eventID uint) ([]financialdomain.TransactionWithCategory, error) {
	var rows []struct {
		financialdomain.Transaction
		CategoryName *string `gorm:"column:category_name"`
	}

	err := r.db.WithContext(ctx).
		Table("financial_transactions").
		Select("financial_transactions.*, financial_categories.name AS category_name").
		Joins("LEFT JOIN financial_categories ON financial_categories.id = financial_transactions.category_id").
		Where("financial_transactions.event_id = ?", eventID).
		Order("financial_transactions.created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]financialdomain.TransactionWithCategory, 0, len(rows))
	for _, row := range rows {
		items = append(items, financialdomain.TransactionWithCategory{
			Transaction:  row.Transaction,
			CategoryName: row.CategoryName,
		})
	}
	return items, nil
}

func (r *PostgresRepository) ListSettledByEvent(ctx context.Context, eventID uint) ([]financialdomain.Transaction, error) {
	var items []financialdomain.Transaction
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND status = ? AND paid_at IS NOT NULL", eventID, financialdomain.StatusSettled).
		Order("paid_at asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) EventExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("events").Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CategoryExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("financial_categories").Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
