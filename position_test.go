package recon

import (
	"slices"
	"testing"
)

func symbols(p *Positions) []string {
	var got []string
	for pos := range p.All() {
		got = append(got, pos.Symbol)
	}
	return got
}

func TestPositions_InsertionOrder(t *testing.T) {
	p := NewPositions()
	p.Set(P("AAPL", 100))
	p.Set(P("GOOG", 200))
	p.Set(P("Cash", 1000))
	p.Set(P("GOOG", 220)) // overwrite keeps the original rank

	want := []string{"AAPL", "GOOG", "Cash"}
	if got := symbols(p); !slices.Equal(got, want) {
		t.Errorf("iteration order = %v, want %v", got, want)
	}
	if got := p.Shares("GOOG"); !got.Equal(Q(220)) {
		t.Errorf("GOOG shares = %s, want 220", got)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestPositions_SharesOfMissingSymbolIsZero(t *testing.T) {
	p := NewPositions()
	if got := p.Shares("TD"); !got.IsZero() {
		t.Errorf("shares of missing symbol = %s, want 0", got)
	}
	if p.Has("TD") {
		t.Error("Has reports a missing symbol as present")
	}
}

func TestPositions_CloneIsIndependent(t *testing.T) {
	starting := NewPositions()
	starting.Set(P("AAPL", 100))
	starting.Set(P("Cash", 1000))

	final := starting.Clone()
	final.Set(P("AAPL", 0))
	final.Set(P("TD", 100))

	// The source must be unaffected by any mutation of the clone.
	if got := starting.Shares("AAPL"); !got.Equal(Q(100)) {
		t.Errorf("starting AAPL shares = %s after mutating clone, want 100", got)
	}
	if starting.Has("TD") {
		t.Error("starting gained a symbol inserted into the clone")
	}
	if got := final.Shares("AAPL"); !got.Equal(Q(0)) {
		t.Errorf("final AAPL shares = %s, want 0", got)
	}
}

func TestTransactionBook_AppendKeepsFileOrder(t *testing.T) {
	book := NewTransactionBook()
	book.Append(T("GOOG", Buy, 10, 10000))
	book.Append(T("AAPL", Sell, 100, 30000))
	book.Append(T("GOOG", Dividend, 0, 50))

	goog := book.Get("GOOG")
	if len(goog) != 2 {
		t.Fatalf("GOOG transactions = %d, want 2", len(goog))
	}
	if goog[0].Action != Buy || goog[1].Action != Dividend {
		t.Errorf("GOOG transactions out of order: %v then %v", goog[0].Action, goog[1].Action)
	}

	var order []string
	seen := map[string]bool{}
	for tx := range book.All() {
		if !seen[tx.Symbol] {
			seen[tx.Symbol] = true
			order = append(order, tx.Symbol)
		}
	}
	if want := []string{"GOOG", "AAPL"}; !slices.Equal(order, want) {
		t.Errorf("symbol iteration order = %v, want %v", order, want)
	}
	if book.Len() != 3 {
		t.Errorf("Len() = %d, want 3", book.Len())
	}
}
