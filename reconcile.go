package recon

// ReconcilePositions compares the reported end-of-day positions against the
// computed final positions and records every nonzero discrepancy.
//
// For each expected position, in file order: a symbol absent from the final
// positions is recorded verbatim (full discrepancy); a symbol held with a
// different quantity is recorded as the delta expected minus final; equal
// quantities produce no entry. Then every final position whose symbol was
// not reported, with nonzero shares, is recorded negated: an unexpected
// holding counts against the account.
//
// The two passes touch disjoint symbols, so entries never collide. Call
// after ApplyTransactions; entries keep insertion order for output.
func (a *Account) ReconcilePositions() {
	for expected := range a.Expected.All() {
		final, ok := a.Final.Get(expected.Symbol)
		if !ok {
			a.Reconciliations.Set(expected)
			continue
		}
		if !final.Shares.Equal(expected.Shares) {
			delta := expected.Shares.Sub(final.Shares)
			a.Reconciliations.Set(Position{Symbol: expected.Symbol, Shares: delta})
		}
	}

	for final := range a.Final.All() {
		if !a.Expected.Has(final.Symbol) && !final.Shares.IsZero() {
			a.Reconciliations.Set(Position{Symbol: final.Symbol, Shares: final.Shares.Neg()})
		}
	}
}
