// Package spacefile loads a composite space description from YAML and turns
// it into a builder.Generator.
//
// A file lists dimensions in declaration order (the first dimension is the
// most significant), an optional pool ID scheme, an optional scan limit and
// a declarative constraint:
//
//	ids: symbol
//	scanLimit: 100000
//	constraint:
//	  distinctItems: true
//	dimensions:
//	  - kind: distinct
//	    count: 2
//	    pool: [A, B, C]
//	  - kind: bits
//	    length: 8
//	    ones: 4
//
// Unknown fields are rejected. Decoding checks the shape of the file;
// combinatorial validity (count ≤ pool size and so on) is reported by
// Generator, wrapping builder.ErrInvalidDimension.
package spacefile
