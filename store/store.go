package store

import (
	"errors"
	"log"
	"sync"

	"storefront/models"
)

// ErrInvalidQuantity is returned by Add for quantities below 1. Absolute
// updates are exempt: SetQuantity treats zero and negative as removal.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Persister mirrors the in-memory cart to durable storage. The store is the
// only writer; Load is consulted once, at construction.
type Persister interface {
	Load() ([]models.CartEntry, error)
	Save(entries []models.CartEntry) error
}

// CartStore holds one session's cart: insertion-ordered entries, one per
// product. Every successful mutation is flushed to the persister before the
// call returns. A failed flush is logged and swallowed; the in-memory cart
// still advances.
type CartStore struct {
	mu        sync.Mutex
	entries   []models.CartEntry
	index     map[string]int
	persister Persister
}

// NewCartStore hydrates the cart from the persister. A load or parse failure
// is logged and the store starts empty. Stored entries with a missing product
// id or a non-positive quantity are dropped; duplicates collapse into the
// first occurrence.
func NewCartStore(p Persister) *CartStore {
	s := &CartStore{
		index:     make(map[string]int),
		persister: p,
	}
	if p == nil {
		return s
	}

	entries, err := p.Load()
	if err != nil {
		log.Println("cart: failed to load persisted cart, starting empty:", err)
		return s
	}
	for _, e := range entries {
		if e.ProductID == "" || e.Quantity <= 0 {
			continue
		}
		if i, ok := s.index[e.ProductID]; ok {
			s.entries[i].Quantity += e.Quantity
			continue
		}
		s.index[e.ProductID] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return s
}

// Add increments the quantity for productID, appending a new entry on first
// add.
func (s *CartStore) Add(productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[productID]; ok {
		s.entries[i].Quantity += quantity
	} else {
		s.index[productID] = len(s.entries)
		s.entries = append(s.entries, models.CartEntry{ProductID: productID, Quantity: quantity})
	}
	s.persist()
	return nil
}

// SetQuantity replaces the quantity for productID. Zero or negative removes
// the entry. Unknown product ids are ignored.
func (s *CartStore) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		s.persist()
		return
	}

	if i, ok := s.index[productID]; ok {
		s.entries[i].Quantity = quantity
		s.persist()
	}
}

// Remove deletes the entry for productID. Removing an absent product is a
// no-op, not an error.
func (s *CartStore) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
	s.persist()
}

// Clear empties the cart and persists the empty state.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.index = make(map[string]int)
	s.persist()
}

// Entries returns a copy of the cart in insertion order.
func (s *CartStore) Entries() []models.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Quantity returns the quantity for productID, zero when absent.
func (s *CartStore) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[productID]; ok {
		return s.entries[i].Quantity
	}
	return 0
}

// Len returns the number of distinct products in the cart.
func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *CartStore) removeLocked(productID string) {
	i, ok := s.index[productID]
	if !ok {
		return
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.index, productID)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].ProductID] = j
	}
}

func (s *CartStore) persist() {
	if s.persister == nil {
		return
	}
	entries := s.entries
	if entries == nil {
		entries = []models.CartEntry{}
	}
	if err := s.persister.Save(entries); err != nil {
		log.Println("cart: failed to persist cart:", err)
	}
}
