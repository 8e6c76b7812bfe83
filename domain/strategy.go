package domain

import "strings"

// Strategy selects the order in which extra money is applied to debts.
type Strategy int

const (
	Avalanche Strategy = iota // mayor tasa primero
	Snowball                  // menor saldo primero
)

func (s Strategy) String() string {
	switch s {
	case Avalanche:
		return "avalanche"
	case Snowball:
		return "snowball"
	}
	return "unknown"
}

// ParseStrategy maps "avalanche" or "snowball" (any case) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avalanche":
		return Avalanche, nil
	case "snowball":
		return Snowball, nil
	}
	return 0, InvalidInput("strategy", "unknown strategy %q", s)
}

func (s Strategy) MarshalText() ([]byte, error) {
	if s != Avalanche && s != Snowball {
		return nil, InvalidInput("strategy", "unknown strategy %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
