package clients

import "context"

type Repository interface {
	Create(ctx context.Context, client *Client) error
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id uint) (*Client, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}
