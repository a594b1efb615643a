// Package builder defines shared constants used by dimension constructors,
// ensuring consistent error prefixes and defaults.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for Build.
	MethodBuild = "Build"
	// MethodFixedRepeated is the canonical name for the FixedRepeated dimension.
	MethodFixedRepeated = "FixedRepeated"
	// MethodFixedDistinct is the canonical name for the FixedDistinct dimension.
	MethodFixedDistinct = "FixedDistinct"
	// MethodRanged is the canonical name for the Ranged/RangedOf dimensions.
	MethodRanged = "Ranged"
	// MethodPermutation is the canonical name for the Permutation dimension.
	MethodPermutation = "Permutation"
	// MethodArrangement is the canonical name for the Arrangement dimension.
	MethodArrangement = "Arrangement"
	// MethodBitString is the canonical name for the BitString dimension.
	MethodBitString = "BitString"
	// MethodSymbols is the canonical name for the Symbols pool source.
	MethodSymbols = "Symbols"
	// MethodLexOrderNth is the canonical name for Generator.LexOrderNth.
	MethodLexOrderNth = "LexOrderNth"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// BitOne and BitZero are the BitString pool items; BitOne sorts first, so
// rank 0 of BitString(n, k) is k ones followed by n-k zeros.
const (
	BitOne  = "1"
	BitZero = "0"
)

// MinPoolSize is the smallest pool any dimension accepts.
const MinPoolSize = 1
