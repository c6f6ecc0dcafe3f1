package platform

import (
	"context"
	"net/http"
)

// ListLanguages returns every programming language in display order.
func (c *Client) ListLanguages(ctx context.Context) ([]ProgrammingLanguage, error) {
	var langs []ProgrammingLanguage
	if err := c.do(ctx, "languages.list", http.MethodGet, "/admin/languages", nil, nil, &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

func (c *Client) CreateLanguage(ctx context.Context, in LanguageInput) (*ProgrammingLanguage, error) {
	var lang ProgrammingLanguage
	if err := c.do(ctx, "languages.create", http.MethodPost, "/admin/languages", nil, in, &lang); err != nil {
		return nil, err
	}
	return &lang, nil
}

func (c *Client) UpdateLanguage(ctx context.Context, id string, in LanguageInput) (*ProgrammingLanguage, error) {
	var lang ProgrammingLanguage
	if err := c.do(ctx, "languages.update", http.MethodPut, "/admin/languages/"+escape(id), nil, in, &lang); err != nil {
		return nil, err
	}
	return &lang, nil
}

// DeleteLanguage answers 409 when submissions still reference the language.
func (c *Client) DeleteLanguage(ctx context.Context, id string) error {
	return c.do(ctx, "languages.delete", http.MethodDelete, "/admin/languages/"+escape(id), nil, nil, nil)
}

// ReorderLanguages persists a new display order given as the full list of language IDs.
func (c *Client) ReorderLanguages(ctx context.Context, ids []string) error {
	body := map[string][]string{"ids": ids}
	return c.do(ctx, "languages.reorder", http.MethodPut, "/admin/languages/order", nil, body, nil)
}
