package engine

import "github.com/praetorian-inc/strmatch/pkg/types"

const (
	// rkPrime is the hash modulus. It is deliberately small, so collisions
	// are common and every hash hit is verified byte by byte.
	rkPrime = 101
	// rkRadix is the polynomial base, one per code unit value.
	rkRadix = alphabetSize
)

// RabinKarp compares rolling window hashes against the pattern hash and only
// compares characters on a hash hit. Average O(n+m), worst case O(n·m) when
// many windows collide.
type RabinKarp struct{}

// NewRabinKarp creates the Rabin-Karp engine.
func NewRabinKarp() RabinKarp { return RabinKarp{} }

// Name implements Engine.
func (RabinKarp) Name() types.AlgorithmName { return types.RabinKarp }

// Search implements Engine.
func (RabinKarp) Search(text, pattern string) types.MatchSet {
	if ms, ok := trivial(text, pattern); ok {
		return ms
	}

	n, m := len(text), len(pattern)

	// h = radix^(m-1) mod prime, the weight of the window's leading byte.
	h := 1
	for i := 0; i < m-1; i++ {
		h = (h * rkRadix) % rkPrime
	}

	patternHash := rkHash(pattern)
	windowHash := rkHash(text[:m])

	matches := types.EmptyMatchSet()
	for i := 0; i <= n-m; i++ {
		if patternHash == windowHash && equalAt(text, pattern, i) {
			matches = append(matches, i)
		}

		if i < n-m {
			windowHash = (rkRadix*(windowHash-int(text[i])*h) + int(text[i+m])) % rkPrime
			if windowHash < 0 {
				windowHash += rkPrime
			}
		}
	}
	return matches
}

// rkHash hashes s from scratch.
func rkHash(s string) int {
	hash := 0
	for i := 0; i < len(s); i++ {
		hash = (rkRadix*hash + int(s[i])) % rkPrime
	}
	return hash
}
