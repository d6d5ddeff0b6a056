package categories

import "context"

type Repository interface {
	Create(ctx context.Context, category *Category) error
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id uint) (*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByName(ctx context.Context, name string, excludeID uint) (int64, error)
	CountTransactionsByCategoryID(ctx context.Context, id uint) (int64, error)
}
