package model

import "github.com/google/uuid"

// Quote ties everything together for save/load: the pieces being quoted and
// the catalog and rates they price against.
type Quote struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Customer string      `json:"customer,omitempty"`
	Pieces   []PieceSpec `json:"pieces"`
	Catalog  Catalog     `json:"catalog"`
	Rates    RateConfig  `json:"rates"`
}

// NewQuote creates an empty quote with default catalog and rates.
func NewQuote(name string) Quote {
	return Quote{
		ID:      uuid.New().String()[:8],
		Name:    name,
		Pieces:  []PieceSpec{},
		Catalog: DefaultCatalog(),
		Rates:   DefaultRateConfig(),
	}
}

// FindPiece returns a pointer to the piece with the given ID, or nil.
func (q *Quote) FindPiece(id string) *PieceSpec {
	for i := range q.Pieces {
		if q.Pieces[i].ID == id {
			return &q.Pieces[i]
		}
	}
	return nil
}

// SlabGroups returns the piece indices grouped by slab group, keyed by the
// group name. Pieces without a group each form their own singleton group
// keyed by their piece ID. Group membership only matters for per-slab
// materials; the pricing engine resolves each group's areas as one unit.
func (q *Quote) SlabGroups() map[string][]int {
	groups := make(map[string][]int)
	for i, p := range q.Pieces {
		key := p.SlabGroup
		if key == "" {
			key = p.ID
		}
		groups[key] = append(groups[key], i)
	}
	return groups
}
