// Package memory implements the emission record stores in process memory.
// Data lives as long as the process; ids start at 1 per store.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
)

// table is an append-only id-keyed collection. Counter increment and
// insert happen under one lock.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
	entity string
}

func newTable[T any](entity string) *table[T] {
	return &table[T]{rows: make(map[int64]T), nextID: 1, entity: entity}
}

func (t *table[T]) insert(ctx context.Context, assign func(id int64) T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	row := assign(id)
	t.rows[id] = row
	return row, nil
}

func (t *table[T]) get(ctx context.Context, id int64) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return zero, fmt.Errorf("%s %d: %w", t.entity, id, domain.ErrNotFound)
	}
	return row, nil
}

// list returns matching rows ordered by id descending, paged, plus the
// number of matching rows.
func (t *table[T]) list(ctx context.Context, filter domain.RecordFilter, owner func(T) *uuid.UUID) ([]T, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	t.mu.RLock()
	ids := make([]int64, 0, len(t.rows))
	for id, row := range t.rows {
		if filter.UserID != nil {
			uid := owner(row)
			if uid == nil || *uid != *filter.UserID {
				continue
			}
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	slices.Reverse(ids)

	total := len(ids)
	start := min(max(filter.Offset, 0), total)
	end := total
	if filter.Limit > 0 {
		end = min(start+filter.Limit, total)
	}

	out := make([]T, 0, end-start)
	for _, id := range ids[start:end] {
		out = append(out, t.rows[id])
	}
	t.mu.RUnlock()

	return out, total, nil
}

func (t *table[T]) each(ctx context.Context, fn func(T)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		fn(row)
	}
	return nil
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func cloneUserID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
