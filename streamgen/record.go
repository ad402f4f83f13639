package streamgen

import (
	"fmt"
	"strings"
)

// Instead of implementing full value objects, alias types and small helpers ...

type ClientIDUint = uint64
type TransactionIDUint = uint64

// Records is an alias type for a slice of Record.
type Records = []Record

// RecordType identifies the variant of a Record.
type RecordType string

const (
	RecordTypeDeposit    RecordType = "deposit"
	RecordTypeWithdrawal RecordType = "withdrawal"
	RecordTypeDispute    RecordType = "dispute"
	RecordTypeResolve    RecordType = "resolve"
	RecordTypeChargeback RecordType = "chargeback"
)

// amountScale is the fixed-point denominator of Amount (4 decimal digits).
const amountScale = 10_000

// Amount is a ledger amount in ten-thousandths of the currency unit.
// Keeping amounts as fixed-point integers avoids float formatting artifacts
// in the emitted stream.
type Amount int64

// String renders the amount with up to 4 decimal digits, trailing zeros
// trimmed, matching the textual output the downstream engine expects.
func (a Amount) String() string {
	whole := int64(a) / amountScale
	frac := int64(a) % amountScale

	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}

	fracDigits := strings.TrimRight(fmt.Sprintf("%04d", frac), "0")

	return fmt.Sprintf("%d.%s", whole, fracDigits)
}

// Record is the tagged union of all event variants a stream contains.
// Deposit and withdrawal records carry an amount; dispute, resolve and
// chargeback records reference an earlier transaction and carry none.
//
// While its properties are exported, it should only be constructed with the
// supplied factory methods:
//   - BuildDeposit / BuildWithdrawal
//   - BuildDispute / BuildResolve / BuildChargeback
type Record struct {
	Type   RecordType
	Client ClientIDUint
	Tx     TransactionIDUint
	Amount Amount
}

// BuildDeposit is a factory method for a deposit Record.
func BuildDeposit(client ClientIDUint, tx TransactionIDUint, amount Amount) Record {
	return Record{Type: RecordTypeDeposit, Client: client, Tx: tx, Amount: amount}
}

// BuildWithdrawal is a factory method for a withdrawal Record.
func BuildWithdrawal(client ClientIDUint, tx TransactionIDUint, amount Amount) Record {
	return Record{Type: RecordTypeWithdrawal, Client: client, Tx: tx, Amount: amount}
}

// BuildDispute is a factory method for a dispute Record.
func BuildDispute(client ClientIDUint, tx TransactionIDUint) Record {
	return Record{Type: RecordTypeDispute, Client: client, Tx: tx}
}

// BuildResolve is a factory method for a resolve Record.
func BuildResolve(client ClientIDUint, tx TransactionIDUint) Record {
	return Record{Type: RecordTypeResolve, Client: client, Tx: tx}
}

// BuildChargeback is a factory method for a chargeback Record.
func BuildChargeback(client ClientIDUint, tx TransactionIDUint) Record {
	return Record{Type: RecordTypeChargeback, Client: client, Tx: tx}
}

// HasAmount reports whether this record variant carries an amount column.
func (r Record) HasAmount() bool {
	switch r.Type {
	case RecordTypeDeposit, RecordTypeWithdrawal:
		return true
	default:
		return false
	}
}
