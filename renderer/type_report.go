package renderer

import "github.com/etnz/recon"

// PositionRow is one symbol's starting, computed and reported quantities,
// formatted for display. Absent positions render as "-".
type PositionRow struct {
	Symbol   string
	Starting string
	Final    string
	Expected string
}

// TransactionRow is one transaction formatted for display, its value
// expressed as signed money in the report currency.
type TransactionRow struct {
	Symbol string
	Action string
	Shares string
	Amount string
}

// DiscrepancyRow is one reconciliation entry formatted for display.
type DiscrepancyRow struct {
	Symbol string
	Shares string
}

// Report is the view model for the markdown reconciliation report.
type Report struct {
	Currency      string
	Positions     []PositionRow
	Transactions  []TransactionRow
	CashFlow      string // net signed cash flow of the day's transactions
	Discrepancies []DiscrepancyRow
}

// NewReport builds the report view model from a reconciled account. The
// account is expected to have been through ApplyTransactions and
// ReconcilePositions already.
func NewReport(account *recon.Account, currency string) *Report {
	r := &Report{Currency: currency}

	for _, symbol := range reportSymbols(account) {
		r.Positions = append(r.Positions, PositionRow{
			Symbol:   symbol,
			Starting: shareCell(account.Starting, symbol),
			Final:    shareCell(account.Final, symbol),
			Expected: shareCell(account.Expected, symbol),
		})
	}

	flow := recon.M(0, currency)
	for tx := range account.Transactions.All() {
		amount := tx.Value.Money(currency)
		if outgoing(tx.Action) {
			amount = amount.Neg()
		}
		flow = flow.Add(amount)
		r.Transactions = append(r.Transactions, TransactionRow{
			Symbol: tx.Symbol,
			Action: string(tx.Action),
			Shares: tx.Shares.String(),
			Amount: amount.SignedString(),
		})
	}
	r.CashFlow = flow.SignedString()

	for pos := range account.Reconciliations.All() {
		r.Discrepancies = append(r.Discrepancies, DiscrepancyRow{
			Symbol: pos.Symbol,
			Shares: pos.Shares.String(),
		})
	}
	return r
}

// outgoing reports whether an action takes money out of the account.
func outgoing(action recon.Action) bool {
	return action == recon.Buy || action == recon.Fee
}

// reportSymbols returns every symbol of the account, starting-positions
// order first, then symbols only seen in final, then reported-only symbols.
func reportSymbols(account *recon.Account) []string {
	var symbols []string
	seen := map[string]bool{}
	add := func(symbol string) {
		if !seen[symbol] {
			seen[symbol] = true
			symbols = append(symbols, symbol)
		}
	}
	for pos := range account.Starting.All() {
		add(pos.Symbol)
	}
	for pos := range account.Final.All() {
		add(pos.Symbol)
	}
	for pos := range account.Expected.All() {
		add(pos.Symbol)
	}
	return symbols
}

func shareCell(positions *recon.Positions, symbol string) string {
	pos, ok := positions.Get(symbol)
	if !ok {
		return "-"
	}
	return pos.Shares.String()
}
