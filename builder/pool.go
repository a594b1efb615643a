package builder

import (
	"fmt"

	"github.com/katalvlaran/lexspace/space"
)

// PoolSource resolves the item pool of a dimension against the builder
// configuration.
type PoolSource func(cfg builderConfig) (space.Pool, error)

// Items uses the given items, in order, as the pool.
func Items(items ...string) PoolSource {
	fixed := append([]string(nil), items...)
	return func(builderConfig) (space.Pool, error) {
		return space.NewPool(fixed...)
	}
}

// Symbols generates n items with the configured ID scheme (cfg.idFn(0..n-1)).
// A panicking scheme (e.g. SymbolIDFn beyond "Z") yields ErrConstructFailed.
func Symbols(n int) PoolSource {
	return func(cfg builderConfig) (pool space.Pool, err error) {
		if err = validateMin(MethodSymbols, n, MinPoolSize); err != nil {
			return space.Pool{}, err
		}
		defer func() {
			if r := recover(); r != nil {
				pool, err = space.Pool{}, fmt.Errorf("%s(%d): id scheme: %v: %w", MethodSymbols, n, r, ErrConstructFailed)
			}
		}()

		items := make([]string, n)
		for i := range items {
			items[i] = cfg.idFn(i)
		}

		return space.NewPool(items...)
	}
}

// resolvePool runs src, tagging failures with the dimension method.
func resolvePool(method string, src PoolSource, cfg builderConfig) (space.Pool, error) {
	if src == nil {
		return space.Pool{}, fmt.Errorf("%s: nil pool source: %w", method, ErrConstructFailed)
	}
	p, err := src(cfg)
	if err != nil {
		return space.Pool{}, fmt.Errorf("%s: pool: %w", method, err)
	}

	return p, nil
}
