package repo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rogerio-castellano/stock-keeper/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func product(name string, stock int) models.Product {
	return models.Product{Name: strPtr(name), Stock: intPtr(stock), Unit: strPtr("ea")}
}

func TestInMemoryProductRepository_CreateAndDuplicate(t *testing.T) {
	r := NewInMemoryProductRepository(nil)
	ctx := context.Background()

	id, err := r.Create(ctx, product("Widget", 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}

	_, err = r.Create(ctx, product("Widget", 3))
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	all, _ := r.GetAll(ctx)
	if len(all) != 1 {
		t.Errorf("expected 1 product, got %d", len(all))
	}
}

func TestInMemoryProductRepository_RequiredFields(t *testing.T) {
	r := NewInMemoryProductRepository(nil)
	ctx := context.Background()

	tests := []struct {
		name string
		p    models.Product
	}{
		{"missing name", models.Product{Stock: intPtr(1)}},
		{"missing stock", models.Product{Name: strPtr("Bolt")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Create(ctx, tt.p); !errors.Is(err, ErrMissingField) {
				t.Errorf("Create: expected ErrMissingField, got %v", err)
			}
			if _, err := r.InsertIfAbsent(ctx, tt.p); !errors.Is(err, ErrMissingField) {
				t.Errorf("InsertIfAbsent: expected ErrMissingField, got %v", err)
			}
		})
	}
}

func TestInMemoryProductRepository_Update(t *testing.T) {
	r := NewInMemoryProductRepository(nil)
	ctx := context.Background()

	p := product("Widget", 10)
	p.Image = strPtr("widget.png")
	id, _ := r.Create(ctx, p)

	res, err := r.Update(ctx, models.Product{ID: id, Name: strPtr("Widget"), Stock: intPtr(7)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Changes != 1 || !res.StockChanged() || *res.OldStock != 10 || *res.NewStock != 7 {
		t.Errorf("unexpected update result %+v", res)
	}

	all, _ := r.GetAll(ctx)
	if all[0].Unit != nil {
		t.Errorf("expected omitted unit to be cleared, got %v", *all[0].Unit)
	}
	if all[0].Image == nil || *all[0].Image != "widget.png" {
		t.Errorf("expected image to be kept, got %v", all[0].Image)
	}

	res, err = r.Update(ctx, models.Product{ID: 999, Name: strPtr("Ghost"), Stock: intPtr(1)})
	if err != nil {
		t.Fatalf("unexpected error on missing id: %v", err)
	}
	if res.Changes != 0 || res.StockChanged() {
		t.Errorf("expected zero changes, got %+v", res)
	}

	res, err = r.Update(ctx, models.Product{ID: 999})
	if err != nil {
		t.Fatalf("expected missing id with empty fields to match nothing, got %v", err)
	}
	if res.Changes != 0 {
		t.Errorf("expected zero changes, got %+v", res)
	}

	if _, err := r.Update(ctx, models.Product{ID: id, Stock: intPtr(1)}); !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField for existing id without name, got %v", err)
	}
}

func TestInMemoryProductRepository_UpdateNameCollision(t *testing.T) {
	r := NewInMemoryProductRepository(nil)
	ctx := context.Background()

	r.Create(ctx, product("Widget", 1))
	id, _ := r.Create(ctx, product("Gadget", 1))

	_, err := r.Update(ctx, models.Product{ID: id, Name: strPtr("Widget"), Stock: intPtr(1)})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestInMemoryProductRepository_InsertIfAbsent(t *testing.T) {
	r := NewInMemoryProductRepository(nil)
	ctx := context.Background()

	inserted, err := r.InsertIfAbsent(ctx, product("Widget", 10))
	if err != nil || !inserted {
		t.Fatalf("expected insert, got inserted=%v err=%v", inserted, err)
	}

	inserted, err = r.InsertIfAbsent(ctx, product("Widget", 99))
	if err != nil || inserted {
		t.Fatalf("expected skip, got inserted=%v err=%v", inserted, err)
	}

	all, _ := r.GetAll(ctx)
	if *all[0].Stock != 10 {
		t.Errorf("expected existing stock to stay 10, got %d", *all[0].Stock)
	}
}

func TestInMemoryProductRepository_DeleteAllClearsHistory(t *testing.T) {
	history := NewInMemoryHistoryRepository()
	r := NewInMemoryProductRepository(history)
	ctx := context.Background()

	id, _ := r.Create(ctx, product("Widget", 10))
	r.Create(ctx, product("Gadget", 5))
	history.Log(ctx, models.HistoryEntry{ProductID: intPtr(id), OldQuantity: intPtr(10), NewQuantity: intPtr(8)})

	removed, err := r.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}

	all, _ := r.GetAll(ctx)
	if len(all) != 0 {
		t.Errorf("expected no products, got %d", len(all))
	}
	entries, _ := history.GetByProductID(ctx, id)
	if len(entries) != 0 {
		t.Errorf("expected history to be cleared, got %d entries", len(entries))
	}

	newID, _ := r.Create(ctx, product("Widget", 1))
	if newID == id {
		t.Errorf("expected ids not to be reused after DeleteAll, got %d again", newID)
	}
}

func TestInMemoryProductRepository_ConcurrentInsertIfAbsent(t *testing.T) {
	r := NewInMemoryProductRepository(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	insertedCount := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inserted, err := r.InsertIfAbsent(ctx, product("Widget", 1))
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if inserted {
				mu.Lock()
				insertedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if insertedCount != 1 {
		t.Errorf("expected exactly one insert, got %d", insertedCount)
	}
}

func TestInMemoryHistoryRepository_GetByProductID(t *testing.T) {
	r := NewInMemoryHistoryRepository()
	ctx := context.Background()

	entries, err := r.GetByProductID(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", entries)
	}

	r.Log(ctx, models.HistoryEntry{ProductID: intPtr(1), NewQuantity: intPtr(3)})
	r.Log(ctx, models.HistoryEntry{ProductID: intPtr(2), NewQuantity: intPtr(4)})
	r.Log(ctx, models.HistoryEntry{ProductID: intPtr(1), NewQuantity: intPtr(5)})

	entries, _ = r.GetByProductID(ctx, 1)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != 1 || entries[1].ID != 3 {
		t.Errorf("expected storage order ids 1,3, got %d,%d", entries[0].ID, entries[1].ID)
	}
}
