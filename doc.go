// Package recon provides the functions and types to reconcile a brokerage
// account's reported end-of-day positions against the positions computed by
// replaying the day's transactions over the opening snapshot.
//
// The core functionalities include:
//   - Account Records: Decoding a flat text account file holding opening
//     positions, the day's transactions, and the externally reported
//     end-of-day positions.
//   - Accounting Engine: Replaying buys, sells, deposits, fees and dividends
//     against the opening positions and the cash balance to compute the
//     final positions.
//   - Reconciliation: Comparing reported positions against computed ones and
//     recording the signed discrepancy for every symbol that disagrees.
//   - Data Persistence: Encoding the reconciliation result back to a flat,
//     human-readable text file.
//
// This package serves as the foundational logic for the `rcn` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package recon
