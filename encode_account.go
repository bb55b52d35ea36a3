package recon

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Section kinds selecting the record type of the lines that follow a header.
const (
	kindPositions    = "POS"
	kindTransactions = "TRN"
)

// parseRecord splits one trimmed account file line into its fields.
// A hyphen counts as a field separator, so the "D0-POS" header form and the
// "D0 POS" form are equivalent.
func parseRecord(line string) []string {
	return strings.Fields(strings.ReplaceAll(line, "-", " "))
}

// isHeader reports whether fields form a section header like "D0-POS" or
// "D1-TRN": two fields, the second naming a known record kind.
func isHeader(fields []string) bool {
	return len(fields) == 2 && (fields[1] == kindPositions || fields[1] == kindTransactions)
}

// DecodeAccount decodes an account from a stream of flat text records.
//
// The stream is a sequence of sections. A header line (e.g. "D0-POS",
// "D1-TRN", "D1-POS") selects the collection receiving the records that
// follow, until the next header. Under a POS section each line is a
// position record "<symbol> <shares>"; under a TRN section each line is a
// transaction record "<symbol> <ACTION> <shares> <value>". The section
// kind, not the field count, decides the record type, so a transaction
// with a zero value cannot be mistaken for a position.
//
// On success the account's Final collection is an independent deep copy of
// Starting, ready for ApplyTransactions.
func DecodeAccount(r io.Reader) (*Account, error) {
	account := NewAccount()
	scanner := bufio.NewScanner(r)

	section := ""
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := parseRecord(text)
		if isHeader(fields) {
			section = fields[0] + "_" + fields[1]
			continue
		}
		if err := account.insertRecord(section, fields); err != nil {
			return nil, fmt.Errorf("line %d %q: %w", line, text, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read account records: %w", err)
	}

	account.Final = account.Starting.Clone()
	return account, nil
}

// insertRecord routes one record to the collection selected by the current
// section. There is no collection for an unrecognized section, which makes
// a record under one a fatal decode error.
func (a *Account) insertRecord(section string, fields []string) error {
	switch section {
	case "D0_POS":
		pos, err := parsePosition(fields)
		if err != nil {
			return err
		}
		a.Starting.Set(pos)
	case "D1_POS":
		pos, err := parsePosition(fields)
		if err != nil {
			return err
		}
		a.Expected.Set(pos)
	case "D1_TRN":
		tx, err := parseTransaction(fields)
		if err != nil {
			return err
		}
		a.Transactions.Append(tx)
	case "":
		return fmt.Errorf("record before any section header")
	default:
		return fmt.Errorf("no collection for section %q", section)
	}
	return nil
}

func parsePosition(fields []string) (Position, error) {
	if len(fields) != 2 {
		return Position{}, fmt.Errorf("position record needs 2 fields, got %d", len(fields))
	}
	shares, err := ParseQuantity(fields[1])
	if err != nil {
		return Position{}, fmt.Errorf("invalid shares %q: %w", fields[1], err)
	}
	return Position{Symbol: fields[0], Shares: shares}, nil
}

func parseTransaction(fields []string) (Transaction, error) {
	if len(fields) != 4 {
		return Transaction{}, fmt.Errorf("transaction record needs 4 fields, got %d", len(fields))
	}
	shares, err := ParseQuantity(fields[2])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid shares %q: %w", fields[2], err)
	}
	value, err := ParseQuantity(fields[3])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid value %q: %w", fields[3], err)
	}
	return NewTransaction(fields[0], Action(fields[1]), shares, value), nil
}

// EncodeReconciliations writes the account's reconciliation entries, one
// "<symbol> <shares>" line per entry, in insertion order.
func EncodeReconciliations(w io.Writer, account *Account) error {
	for pos := range account.Reconciliations.All() {
		if _, err := fmt.Fprintf(w, "%s %s\n", pos.Symbol, pos.Shares); err != nil {
			return fmt.Errorf("could not write reconciliation for %q: %w", pos.Symbol, err)
		}
	}
	return nil
}
