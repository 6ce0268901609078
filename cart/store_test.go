package cart

import (
	"context"
	"testing"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

func testLine(id string, price float64) Line {
	return Line{
		ProductID: id,
		Name:      models.LocalizedText{"fr": "Produit " + id},
		Price:     price,
	}
}

func TestAddItemIsIdempotentPerProduct(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, NewMemoryStorage(), "c1")

	if err := s.AddItem(ctx, testLine("p1", 3.50), 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.AddItem(ctx, testLine("p1", 3.50), 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	lines := s.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestUpdateQuantityFloorRemovesLine(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, NewMemoryStorage(), "c1")

	_ = s.AddItem(ctx, testLine("p1", 5), 2)
	if err := s.UpdateQuantity(ctx, "p1", 0); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if len(s.Lines()) != 0 {
		t.Fatal("quantity 0 should remove the line")
	}

	_ = s.AddItem(ctx, testLine("p2", 5), 1)
	if err := s.UpdateQuantity(ctx, "p2", -3); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if len(s.Lines()) != 0 {
		t.Fatal("negative quantity should remove the line")
	}
}

func TestUpdateQuantitySetsNotIncrements(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, NewMemoryStorage(), "c1")

	_ = s.AddItem(ctx, testLine("p1", 5), 2)
	if err := s.UpdateQuantity(ctx, "p1", 7); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if got := s.Lines()[0].Quantity; got != 7 {
		t.Fatalf("expected quantity set to 7, got %d", got)
	}
}

func TestTotalAndCount(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, NewMemoryStorage(), "c1")

	_ = s.AddItem(ctx, testLine("p1", 3.50), 2)
	_ = s.AddItem(ctx, testLine("p2", 10.00), 1)

	if got := s.Total(); got != 17.00 {
		t.Fatalf("expected total 17.00, got %v", got)
	}
	if got := s.Count(); got != 3 {
		t.Fatalf("expected count 3, got %d", got)
	}
}

func TestEmptyCartTotalsZero(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, NewMemoryStorage(), "c1")
	if s.Total() != 0 || s.Count() != 0 {
		t.Fatal("empty cart must total 0")
	}
}

func TestZeroPriceLineIsTolerated(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, NewMemoryStorage(), "c1")
	_ = s.AddItem(ctx, testLine("gift", 0), 3)
	if s.Total() != 0 {
		t.Fatalf("expected total 0 for free items, got %v", s.Total())
	}
	if s.Count() != 3 {
		t.Fatalf("expected count 3, got %d", s.Count())
	}
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, NewMemoryStorage(), "c1")
	_ = s.AddItem(ctx, testLine("p1", 5), 1)
	if err := s.RemoveItem(ctx, "missing"); err != nil {
		t.Fatalf("removing an absent line must not error: %v", err)
	}
	if len(s.Lines()) != 1 {
		t.Fatal("existing line must survive a no-op remove")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	s := Load(ctx, storage, "c1")
	_ = s.AddItem(ctx, testLine("p1", 3.50), 2)
	_ = s.AddItem(ctx, testLine("p2", 10.00), 1)
	_ = s.SetOpen(ctx, true)

	restored := Load(ctx, storage, "c1")
	if len(restored.Lines()) != 2 {
		t.Fatalf("expected 2 restored lines, got %d", len(restored.Lines()))
	}
	if restored.Total() != 17.00 || restored.Count() != 3 {
		t.Fatalf("restored totals mismatch: total=%v count=%d", restored.Total(), restored.Count())
	}
	if !restored.State().IsOpen {
		t.Fatal("is_open flag should survive the round trip")
	}
}

func TestCorruptStorageYieldsEmptyCart(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	_ = storage.Save(ctx, "c1", []byte("{not json"))

	s := Load(ctx, storage, "c1")
	if len(s.Lines()) != 0 {
		t.Fatal("corrupt storage must load as an empty cart")
	}
	// The store stays usable after recovery.
	if err := s.AddItem(ctx, testLine("p1", 2), 1); err != nil {
		t.Fatalf("AddItem after corrupt load: %v", err)
	}
}

func TestInvalidStoredLinesAreDropped(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	_ = storage.Save(ctx, "c1", []byte(`{"lines":[{"product_id":"p1","quantity":0,"price":5},{"product_id":"p2","quantity":2,"price":4}]}`))

	s := Load(ctx, storage, "c1")
	lines := s.Lines()
	if len(lines) != 1 || lines[0].ProductID != "p2" {
		t.Fatalf("expected only the valid line to survive, got %+v", lines)
	}
}

func TestClearEmptiesCartAndStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	s := Load(ctx, storage, "c1")
	_ = s.AddItem(ctx, testLine("p1", 5), 2)
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(s.Lines()) != 0 {
		t.Fatal("cart should be empty after Clear")
	}
	if len(Load(ctx, storage, "c1").Lines()) != 0 {
		t.Fatal("storage should be empty after Clear")
	}
}
