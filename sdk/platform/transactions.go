package platform

import (
	"context"
	"net/http"
)

func (c *Client) ListTransactions(ctx context.Context, params ListParams) (*Page[PaymentTransaction], error) {
	var page Page[PaymentTransaction]
	if err := c.do(ctx, "transactions.list", http.MethodGet, "/admin/transactions", params.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (*PaymentTransaction, error) {
	var tx PaymentTransaction
	if err := c.do(ctx, "transactions.get", http.MethodGet, "/admin/transactions/"+escape(id), nil, nil, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
