package builder

import (
	"fmt"
	"strconv"
)

// IDFn names pool item idx for Symbols(n). It must be pure and injective;
// a scheme that repeats a name yields a pool with duplicates, which Build
// rejects. Schemes panic on indices they cannot name; Symbols recovers the
// panic as ErrConstructFailed.
type IDFn func(idx int) string

// DefaultIDFn: 0→"0", 42→"42".
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolIDFn: 0→"A" … 25→"Z".
func SymbolIDFn(idx int) string { return letter("SymbolIDFn", 'A', idx) }

// LowerIDFn: 0→"a" … 25→"z".
func LowerIDFn(idx int) string { return letter("LowerIDFn", 'a', idx) }

// AlphanumericIDFn: base 36, 10→"a", 35→"z", 36→"10".
func AlphanumericIDFn(idx int) string {
	return strconv.FormatInt(int64(nonNegative("AlphanumericIDFn", idx)), 36)
}

// HexIDFn: base 16, 255→"ff".
func HexIDFn(idx int) string {
	return strconv.FormatInt(int64(nonNegative("HexIDFn", idx)), 16)
}

// ExcelColumnIDFn: spreadsheet columns, 25→"Z", 26→"AA", 702→"AAA".
func ExcelColumnIDFn(idx int) string {
	var buf []byte
	for i := nonNegative("ExcelColumnIDFn", idx); i >= 0; i = i/26 - 1 {
		buf = append([]byte{byte('A' + i%26)}, buf...)
	}

	return string(buf)
}

// SymbolNumberIDFn returns a scheme producing prefix+decimal: "k0", "k1", …
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(nonNegative("SymbolNumberIDFn", idx))
	}
}

func letter(scheme string, first rune, idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("%s: idx must be in [0,25], got %d", scheme, idx))
	}
	return string(first + rune(idx))
}

func nonNegative(scheme string, idx int) int {
	if idx < 0 {
		panic(fmt.Sprintf("%s: idx must be ≥ 0, got %d", scheme, idx))
	}
	return idx
}

// WithDefaultIDs resets the pool scheme to DefaultIDFn.
// Example: Symbols(3) → "0", "1", "2".
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs sets the pool scheme to SymbolIDFn.
// Example: Symbols(3) → "A", "B", "C"; Symbols(27) fails at Build.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithLowerIDs sets the pool scheme to LowerIDFn.
// Example: Symbols(3) → "a", "b", "c".
func WithLowerIDs() BuilderOption { return WithIDScheme(LowerIDFn) }

// WithExcelColumnIDs sets the pool scheme to ExcelColumnIDFn.
// Example: Symbols(28) → "A" … "Z", "AA", "AB".
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithHexIDs sets the pool scheme to HexIDFn.
// Example: Symbols(17) → "0" … "f", "10".
func WithHexIDs() BuilderOption { return WithIDScheme(HexIDFn) }

// WithAlphanumericIDs sets the pool scheme to AlphanumericIDFn.
// Example: Symbols(36) → "0" … "9", "a" … "z".
func WithAlphanumericIDs() BuilderOption { return WithIDScheme(AlphanumericIDFn) }

// WithSymbNumb sets the pool scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("k") with Symbols(3) → "k0", "k1", "k2".
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
