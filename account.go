package recon

// Account aggregates everything known about a brokerage account for one
// reconciliation run.
//
// Starting is the opening-of-day snapshot and is never mutated after load.
// Final starts as an independent deep copy of Starting and is the only
// collection ApplyTransactions mutates. Reconciliations is populated only
// by ReconcilePositions. Nothing is ever deleted, only added or updated.
type Account struct {
	Starting        *Positions       // opening-of-day snapshot (D0-POS)
	Transactions    *TransactionBook // the day's transactions (D1-TRN)
	Expected        *Positions       // externally reported end-of-day snapshot (D1-POS)
	Final           *Positions       // computed end-of-day snapshot
	Reconciliations *Positions       // nonzero discrepancies, expected minus computed
}

// NewAccount creates an account with empty collections.
func NewAccount() *Account {
	return &Account{
		Starting:        NewPositions(),
		Transactions:    NewTransactionBook(),
		Expected:        NewPositions(),
		Final:           NewPositions(),
		Reconciliations: NewPositions(),
	}
}
