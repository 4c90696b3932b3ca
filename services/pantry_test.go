package services

import (
	"testing"

	"github.com/aarusa/your-ai-meal-sub000/models"

	"gorm.io/gorm"
)

func product(id uint, name string) models.Product {
	p := models.Product{Name: name, Category: "test", Calories: 100}
	p.Model = gorm.Model{ID: id}
	return p
}

func TestPantryAdd_MergesQuantities(t *testing.T) {
	p := NewPantry()
	p.Add(product(1, "rice"), 2)
	p.Add(product(1, "rice"), 3)

	items := p.Items()
	if len(items) != 1 {
		t.Fatalf("expected exactly one item, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", items[0].Quantity)
	}
}

func TestPantryAdd_FirstWriteWinsForNonQuantityFields(t *testing.T) {
	p := NewPantry()
	p.Add(product(1, "rice"), 1)
	first := p.Items()[0]

	renamed := product(1, "basmati rice")
	p.Add(renamed, 1)

	got := p.Items()[0]
	if got.Name != "rice" {
		t.Errorf("name = %q, want first-write value %q", got.Name, "rice")
	}
	if !got.AddedAt.Equal(first.AddedAt) {
		t.Error("AddedAt must not be refreshed on merge")
	}
}

func TestPantryRemove_Idempotent(t *testing.T) {
	p := NewPantry()
	p.Add(product(1, "rice"), 1)
	p.Remove(1)
	p.Remove(1) // no-op
	p.Remove(99)

	if len(p.Items()) != 0 {
		t.Error("expected empty pantry")
	}
}

func TestPantrySetQuantity(t *testing.T) {
	p := NewPantry()
	p.Add(product(1, "rice"), 2)

	p.SetQuantity(1, 7)
	if got := p.Items()[0].Quantity; got != 7 {
		t.Errorf("quantity = %d, want 7", got)
	}

	// zero removes the item
	p.SetQuantity(1, 0)
	if len(p.Items()) != 0 {
		t.Fatal("setQuantity(id, 0) must remove the item")
	}

	// and a subsequent set on the absent id is a no-op
	p.SetQuantity(1, 5)
	if len(p.Items()) != 0 {
		t.Error("setQuantity on absent id must not create an item")
	}
}

func TestPantryClear(t *testing.T) {
	p := NewPantry()
	p.Add(product(1, "rice"), 1)
	p.Add(product(2, "beans"), 1)
	p.Clear()
	if len(p.Items()) != 0 {
		t.Error("expected empty pantry after Clear")
	}
}

func TestPantrySelectSubset(t *testing.T) {
	p := NewPantry()
	p.Add(product(1, "rice"), 1)
	p.Add(product(2, "beans"), 1)
	p.Add(product(3, "eggs"), 1)

	subset := p.SelectSubset([]uint{3, 1, 42})
	if len(subset) != 2 {
		t.Fatalf("expected 2 items, got %d", len(subset))
	}
	// pantry order, not request order
	if subset[0].ProductID != 1 || subset[1].ProductID != 3 {
		t.Errorf("subset order = [%d, %d], want [1, 3]", subset[0].ProductID, subset[1].ProductID)
	}

	// SelectSubset is a pure read
	if len(p.Items()) != 3 {
		t.Error("SelectSubset must not mutate the pantry")
	}
}

func TestPantryStore_PantryPerUser(t *testing.T) {
	store := NewPantryStore()
	store.Pantry(1).Add(product(1, "rice"), 1)

	if n := len(store.Pantry(2).Items()); n != 0 {
		t.Errorf("user 2 pantry has %d items, want 0", n)
	}
}
