// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"iter"
	"slices"

	"github.com/ezrec/jitasm/internal"
)

// databaseRows yields every row of the instruction tables, in order.
func databaseRows() iter.Seq[row] {
	return internal.Concat(
		slices.Values(gpRows()),
		slices.Values(x87Rows()),
		slices.Values(sseRows()),
		slices.Values(avxRows()),
		slices.Values(avx512Rows()),
	)
}

// database holds the parsed signatures, by mnemonic.
type database struct {
	signatures [mnemonicCount][]*Signature
	count      int
}

// loadDatabase parses all rows into signatures.
func loadDatabase() (db *database, err error) {
	db = &database{}
	for order, r := range internal.Enumerate(databaseRows()) {
		if !r.mnemonic.IsValid() {
			err = &ErrTable{Row: r.operands, Err: "mnemonic missing"}
			return
		}
		var sig *Signature
		sig, err = newSignature(r, order)
		if err != nil {
			return
		}
		db.signatures[r.mnemonic] = append(db.signatures[r.mnemonic], sig)
		db.count++
	}
	return
}

var signatureDatabase *database

func init() {
	var err error
	signatureDatabase, err = loadDatabase()
	if err != nil {
		panic(err)
	}
}

// Signatures returns the signatures of a mnemonic in database order. The
// result is shared and must not be modified.
func Signatures(m Mnemonic) []*Signature {
	if !m.IsValid() {
		return nil
	}
	return signatureDatabase.signatures[m]
}

// SignatureCount returns the number of signatures in the database.
func SignatureCount() int {
	return signatureDatabase.count
}

// Mnemonics yields every mnemonic with at least one signature.
func Mnemonics() iter.Seq[Mnemonic] {
	return func(yield func(Mnemonic) bool) {
		for m := ADC; m < mnemonicCount; m++ {
			if len(signatureDatabase.signatures[m]) == 0 {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}
