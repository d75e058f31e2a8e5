package service

import (
	"context"
	"errors"
	"strings"

	"overcooked-chatbot/chat-svc/internal/domain"
)

// SuggestionLimit caps the "did you mean" list.
const SuggestionLimit = 3

// ItemResolver maps free text to one menu item: exact name first, then the
// lowest-id item whose name contains the text. Both are case-insensitive.
type ItemResolver struct {
	catalog CatalogRepository
}

func NewItemResolver(catalog CatalogRepository) *ItemResolver {
	return &ItemResolver{catalog: catalog}
}

func (r *ItemResolver) Resolve(ctx context.Context, restaurantID int, freeText string) (*domain.MenuItem, error) {
	name := strings.TrimSpace(freeText)
	if name == "" {
		return nil, domain.ErrItemNotFound
	}

	item, err := r.catalog.FindMenuItemByName(ctx, restaurantID, name)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, domain.ErrItemNotFound) {
		return nil, err
	}

	matches, err := r.catalog.SearchMenuItems(ctx, restaurantID, name, 1)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domain.ErrItemNotFound
	}
	return &matches[0], nil
}

// Suggest looks for items sharing the first word of the text.
func (r *ItemResolver) Suggest(ctx context.Context, restaurantID int, freeText string) ([]domain.MenuItem, error) {
	words := strings.Fields(freeText)
	if len(words) == 0 {
		return nil, nil
	}
	return r.catalog.SearchMenuItems(ctx, restaurantID, words[0], SuggestionLimit)
}
