// Package bancore implements the core of a personal-banking simulation:
// account registration with CPF validation, balance transactions, Pix-style
// transfers keyed by CPF, a simplified equity ledger with weighted average
// cost basis, and idempotent dividend settlement.
//
// The canonical account collection lives in an AccountStore; every
// LedgerService operation is a full read-modify-write cycle against it, so
// no partial change is ever durable. The presentation layer (the bnc CLI)
// only calls LedgerService operations and renders their results.
package bancore
