package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AlgorithmName identifies one exact-match engine.
type AlgorithmName string

const (
	Naive      AlgorithmName = "Naive"
	KMP        AlgorithmName = "KMP"
	RabinKarp  AlgorithmName = "RabinKarp"
	BoyerMoore AlgorithmName = "BoyerMoore"
	GoCrazy    AlgorithmName = "GoCrazy"
)

// Algorithms returns every algorithm name in canonical order.
// The order is also the selector's tie-break order.
func Algorithms() []AlgorithmName {
	return []AlgorithmName{Naive, KMP, RabinKarp, BoyerMoore, GoCrazy}
}

// String returns the canonical name.
func (a AlgorithmName) String() string {
	return string(a)
}

// Valid reports whether a is one of the known algorithms.
func (a AlgorithmName) Valid() bool {
	switch a {
	case Naive, KMP, RabinKarp, BoyerMoore, GoCrazy:
		return true
	}
	return false
}

// ParseAlgorithmName converts user input into an AlgorithmName.
// Matching is case-insensitive and tolerates "-" and "_" separators,
// so "boyer-moore", "BOYERMOORE" and "BoyerMoore" are all accepted.
func ParseAlgorithmName(s string) (AlgorithmName, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for _, a := range Algorithms() {
		if strings.ToLower(string(a)) == key {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown algorithm %q", s)
}

// UnmarshalJSON accepts any spelling understood by ParseAlgorithmName.
func (a *AlgorithmName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*a = ""
		return nil
	}
	parsed, err := ParseAlgorithmName(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
