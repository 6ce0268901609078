// Package cart implements the shopping cart state machine: an ordered list
// of product lines with quantity management, derived totals and synchronous
// persistence after every mutation.
package cart

import (
	"context"
	"encoding/json"
	"log"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// Line is one product entry in a cart. The localized product name travels
// with the line so checkout can snapshot it without another lookup.
type Line struct {
	ProductID string               `json:"product_id"`
	Name      models.LocalizedText `json:"name"`
	Price     float64              `json:"price"`
	Quantity  int                  `json:"quantity"`
	ImageURL  string               `json:"image_url,omitempty"`
}

// State is the serialized/response form of a cart.
type State struct {
	Lines  []Line  `json:"lines"`
	IsOpen bool    `json:"is_open"`
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
}

// Store owns the lines of a single cart. It is not safe for concurrent use;
// each HTTP request loads, mutates and saves its own Store.
type Store struct {
	id      string
	lines   []Line
	isOpen  bool
	storage Storage
}

// Load restores the cart for cartID. A missing or corrupt stored value
// yields an empty cart, never an error: corrupt storage must not take the
// site down over a shopping cart.
func Load(ctx context.Context, storage Storage, cartID string) *Store {
	s := &Store{id: cartID, storage: storage}

	data, err := storage.Load(ctx, cartID)
	if err != nil {
		log.Printf("[cart.load] storage error for %s, starting empty: %v", cartID, err)
		return s
	}
	if len(data) == 0 {
		return s
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("[cart.load] corrupt cart %s, starting empty: %v", cartID, err)
		return s
	}
	// Discard lines that could never have been produced by a valid mutation.
	for _, l := range state.Lines {
		if l.ProductID == "" || l.Quantity < 1 || l.Price < 0 {
			continue
		}
		s.lines = append(s.lines, l)
	}
	s.isOpen = state.IsOpen
	return s
}

// AddItem appends a line, or increments quantity when a line with the same
// product id already exists; the cart never holds two lines for one
// product. quantity must be at least 1.
func (s *Store) AddItem(ctx context.Context, line Line, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	for i := range s.lines {
		if s.lines[i].ProductID == line.ProductID {
			s.lines[i].Quantity += quantity
			return s.persist(ctx)
		}
	}
	line.Quantity = quantity
	s.lines = append(s.lines, line)
	return s.persist(ctx)
}

// UpdateQuantity sets (not increments) a line's quantity. A quantity ≤ 0
// removes the line. Unknown product ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			return s.persist(ctx)
		}
	}
	return nil
}

// RemoveItem deletes the matching line. Absent lines are a no-op, not an
// error.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart. Called after a successful order submission.
func (s *Store) Clear(ctx context.Context) error {
	s.lines = nil
	s.isOpen = false
	return s.storage.Delete(ctx, s.id)
}

// SetOpen toggles the cart drawer visibility flag; orthogonal to line data.
func (s *Store) SetOpen(ctx context.Context, open bool) error {
	s.isOpen = open
	return s.persist(ctx)
}

// Total sums price times quantity across all lines. An empty cart totals 0.
func (s *Store) Total() float64 {
	var total float64
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Count returns the summed quantities, the header badge number rather
// than the number of lines.
func (s *Store) Count() int {
	var count int
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Lines returns a copy of the line list in insertion order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// State materializes the response form with derived totals.
func (s *Store) State() State {
	return State{
		Lines:  s.Lines(),
		IsOpen: s.isOpen,
		Total:  s.Total(),
		Count:  s.Count(),
	}
}

// persist serializes the full line list synchronously so external readers
// always see the latest state.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(State{Lines: s.lines, IsOpen: s.isOpen})
	if err != nil {
		return err
	}
	return s.storage.Save(ctx, s.id, data)
}
