package recon

import "iter"

// CashSymbol is the reserved symbol under which the account's cash balance
// is held, next to regular security positions.
const CashSymbol = "Cash"

// Position is a symbol's held quantity at a point in time. The cash balance
// is a position like any other, under the CashSymbol symbol.
type Position struct {
	Symbol string
	Shares Quantity
}

// Positions is a collection of positions keyed by symbol.
//
// Unlike a plain map it remembers insertion order: record order in the
// account file is semantically meaningful, both for replaying transactions
// and for the order of the reconciliation output. Setting an existing symbol
// overwrites its position but keeps its original rank.
type Positions struct {
	order []string
	index map[string]Position
}

// NewPositions creates an empty position collection.
func NewPositions() *Positions {
	return &Positions{index: make(map[string]Position)}
}

// Set inserts or overwrites the position for its symbol.
func (p *Positions) Set(pos Position) {
	if _, ok := p.index[pos.Symbol]; !ok {
		p.order = append(p.order, pos.Symbol)
	}
	p.index[pos.Symbol] = pos
}

// Get returns the position held for a symbol, and whether it exists.
func (p *Positions) Get(symbol string) (Position, bool) {
	pos, ok := p.index[symbol]
	return pos, ok
}

// Has returns whether a position exists for a symbol.
func (p *Positions) Has(symbol string) bool {
	_, ok := p.index[symbol]
	return ok
}

// Shares returns the shares held for a symbol, zero when the symbol is
// absent from the collection.
func (p *Positions) Shares(symbol string) Quantity {
	return p.index[symbol].Shares
}

// Len returns the number of positions in the collection.
func (p *Positions) Len() int { return len(p.order) }

// All iterates over positions in insertion order.
func (p *Positions) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, symbol := range p.order {
			if !yield(p.index[symbol]) {
				return
			}
		}
	}
}

// Clone returns an independent deep copy of the collection: mutating the
// clone never alters the source.
func (p *Positions) Clone() *Positions {
	clone := &Positions{
		order: make([]string, len(p.order)),
		index: make(map[string]Position, len(p.index)),
	}
	copy(clone.order, p.order)
	for symbol, pos := range p.index {
		clone.index[symbol] = pos
	}
	return clone
}
