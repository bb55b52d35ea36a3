package recon

import "iter"

// Action is a typed string for identifying the kind of a transaction.
type Action string

// Actions recognized by the accounting engine. Matching is case-sensitive:
// account files must carry them uppercase.
const (
	Buy      Action = "BUY"
	Sell     Action = "SELL"
	Deposit  Action = "DEPOSIT"
	Fee      Action = "FEE"
	Dividend Action = "DIVIDEND"
)

// Transaction is one event affecting a position and/or the cash balance.
// It is immutable once created; Shares and Value are normalized Quantities.
type Transaction struct {
	Symbol string
	Action Action
	Shares Quantity
	Value  Quantity
}

// NewTransaction creates a new transaction.
func NewTransaction(symbol string, action Action, shares, value Quantity) Transaction {
	return Transaction{Symbol: symbol, Action: action, Shares: shares, Value: value}
}

// TransactionBook holds the day's transactions grouped by symbol.
//
// Per-symbol sequences are append-only and keep file order, and symbols
// themselves are iterated in first-occurrence order, so replaying the book
// is deterministic.
type TransactionBook struct {
	order    []string
	bySymbol map[string][]Transaction
}

// NewTransactionBook creates an empty transaction book.
func NewTransactionBook() *TransactionBook {
	return &TransactionBook{bySymbol: make(map[string][]Transaction)}
}

// Append records a transaction at the end of its symbol's sequence,
// creating the sequence on first occurrence.
func (b *TransactionBook) Append(tx Transaction) {
	if _, ok := b.bySymbol[tx.Symbol]; !ok {
		b.order = append(b.order, tx.Symbol)
	}
	b.bySymbol[tx.Symbol] = append(b.bySymbol[tx.Symbol], tx)
}

// Get returns the transactions recorded for a symbol, in file order.
func (b *TransactionBook) Get(symbol string) []Transaction {
	return b.bySymbol[symbol]
}

// Len returns the total number of transactions in the book.
func (b *TransactionBook) Len() int {
	n := 0
	for _, txs := range b.bySymbol {
		n += len(txs)
	}
	return n
}

// All iterates over every transaction, symbols in first-occurrence order,
// transactions in file order within each symbol.
func (b *TransactionBook) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, symbol := range b.order {
			for _, tx := range b.bySymbol[symbol] {
				if !yield(tx) {
					return
				}
			}
		}
	}
}
