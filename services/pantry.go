package services

import (
	"sync"
	"time"

	"github.com/aarusa/your-ai-meal-sub000/models"
)

// PantryItem is a product the user has put in their working ingredient
// set, with the amount they hold.
type PantryItem struct {
	ProductID   uint      `json:"product_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}

// Pantry is one user's in-memory ingredient set. At most one item per
// product id; duplicate adds merge quantities.
type Pantry struct {
	mu    sync.Mutex
	items map[uint]*PantryItem
	order []uint // insertion order for stable listing
}

func NewPantry() *Pantry {
	return &Pantry{items: make(map[uint]*PantryItem)}
}

// Add puts quantity units of the product in the pantry. If the product is
// already present only the quantity grows; every other field, including
// AddedAt, keeps its first-write value.
func (p *Pantry) Add(product models.Product, quantity int) {
	if quantity <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if it, ok := p.items[product.ID]; ok {
		it.Quantity += quantity
		return
	}
	p.items[product.ID] = &PantryItem{
		ProductID:   product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Calories:    product.Calories,
		Protein:     product.Protein,
		Carbs:       product.Carbs,
		Fat:         product.Fat,
		Description: product.Description,
		Quantity:    quantity,
		AddedAt:     time.Now(),
	}
	p.order = append(p.order, product.ID)
}

// Remove deletes the item if present. No-op otherwise.
func (p *Pantry) Remove(productID uint) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.remove(productID)
}

func (p *Pantry) remove(productID uint) {
	if _, ok := p.items[productID]; !ok {
		return
	}
	delete(p.items, productID)
	for i, id := range p.order {
		if id == productID {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// SetQuantity replaces the quantity on an existing item. quantity <= 0
// removes it; an absent id is a no-op.
func (p *Pantry) SetQuantity(productID uint, quantity int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if quantity <= 0 {
		p.remove(productID)
		return
	}
	if it, ok := p.items[productID]; ok {
		it.Quantity = quantity
	}
}

// Clear empties the pantry unconditionally.
func (p *Pantry) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = make(map[uint]*PantryItem)
	p.order = nil
}

// Items returns the pantry contents in insertion order.
func (p *Pantry) Items() []PantryItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]PantryItem, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, *p.items[id])
	}
	return out
}

// SelectSubset returns the items whose product id is in ids, in pantry
// order. Used to build the ingredient list for recipe generation.
func (p *Pantry) SelectSubset(ids []uint) []PantryItem {
	want := make(map[uint]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]PantryItem, 0, len(ids))
	for _, id := range p.order {
		if want[id] {
			out = append(out, *p.items[id])
		}
	}
	return out
}

// PantryStore holds one Pantry per user for the lifetime of the process.
type PantryStore struct {
	mu       sync.RWMutex
	pantries map[uint]*Pantry
}

func NewPantryStore() *PantryStore {
	return &PantryStore{pantries: make(map[uint]*Pantry)}
}

func (s *PantryStore) Pantry(userID uint) *Pantry {
	s.mu.RLock()
	p := s.pantries[userID]
	s.mu.RUnlock()
	if p != nil {
		return p
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p = s.pantries[userID]; p == nil {
		p = NewPantry()
		s.pantries[userID] = p
	}
	return p
}
