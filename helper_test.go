package recon

// P is a helper for tests to create a position from const shares.
func P(symbol string, shares float64) Position {
	return Position{Symbol: symbol, Shares: Q(shares)}
}

// T is a helper for tests to create a transaction from const shares and value.
func T(symbol string, action Action, shares, value float64) Transaction {
	return NewTransaction(symbol, action, Q(shares), Q(value))
}
