package client

import "context"

type ClientRepository interface {
	Save(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	FindByID(ctx context.Context, id uint) (*Client, error)
	// FindByNationalID and FindByFullName return nil, nil when nothing
	// matches.
	FindByNationalID(ctx context.Context, nationalID string) (*Client, error)
	FindByFullName(ctx context.Context, fullName string) (*Client, error)
}
