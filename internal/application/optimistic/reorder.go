package optimistic

import (
	"fmt"

	"github.com/codearena/arena-admin/internal/shared/errors"
)

// Reorder validates that next is a permutation of current and returns it.
func Reorder[ID comparable](current, next []ID) ([]ID, error) {
	if len(current) != len(next) {
		return nil, errors.NewValidationError("invalid order",
			fmt.Sprintf("expected %d ids, got %d", len(current), len(next)))
	}

	known := make(map[ID]struct{}, len(current))
	for _, id := range current {
		known[id] = struct{}{}
	}

	seen := make(map[ID]struct{}, len(next))
	for _, id := range next {
		if _, ok := known[id]; !ok {
			return nil, errors.NewValidationError("invalid order", fmt.Sprintf("unknown id %v", id))
		}
		if _, dup := seen[id]; dup {
			return nil, errors.NewValidationError("invalid order", fmt.Sprintf("duplicate id %v", id))
		}
		seen[id] = struct{}{}
	}

	out := make([]ID, len(next))
	copy(out, next)
	return out, nil
}

// ReorderBy rearranges items to follow ids, keyed by idOf.
func ReorderBy[T any, ID comparable](items []T, ids []ID, idOf func(T) ID) ([]T, error) {
	current := make([]ID, len(items))
	byID := make(map[ID]T, len(items))
	for i, item := range items {
		current[i] = idOf(item)
		byID[current[i]] = item
	}

	order, err := Reorder(current, ids)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(order))
	for i, id := range order {
		out[i] = byID[id]
	}
	return out, nil
}
