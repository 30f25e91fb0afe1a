package bench

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned for a strategy name that does not exist.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy names an evaluation strategy.
type Strategy string

const (
	StrategyEager   Strategy = "eager"
	StrategyLazy    Strategy = "lazy"
	StrategyProgram Strategy = "program"
)

// AllStrategies returns every strategy in reporting order.
func AllStrategies() []Strategy {
	return []Strategy{StrategyEager, StrategyLazy, StrategyProgram}
}

// ParseStrategy parses a strategy name, ignoring case and surrounding space.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyEager:
		return StrategyEager, nil
	case StrategyLazy:
		return StrategyLazy, nil
	case StrategyProgram:
		return StrategyProgram, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// ParseStrategies parses a list of names, dropping duplicates.
func ParseStrategies(names []string) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))
	seen := make(map[Strategy]struct{}, len(names))
	for _, n := range names {
		s, err := ParseStrategy(n)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}
