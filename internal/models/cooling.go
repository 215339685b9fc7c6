package models

import (
	"fmt"
	"strings"
)

// CoolingStrategy is the battery's heat-dissipation mode.
type CoolingStrategy int

const (
	Passive CoolingStrategy = iota
	HighActive
	MediumActive
)

var coolingNames = map[CoolingStrategy]string{
	Passive:      "PASSIVE",
	HighActive:   "HIGH_ACTIVE",
	MediumActive: "MEDIUM_ACTIVE",
}

// legacy names are still accepted on input
var coolingAliases = map[string]CoolingStrategy{
	"PASSIVE":            Passive,
	"PASSIVE_COOLING":    Passive,
	"HIGH_ACTIVE":        HighActive,
	"HI_ACTIVE_COOLING":  HighActive,
	"MEDIUM_ACTIVE":      MediumActive,
	"MED_ACTIVE_COOLING": MediumActive,
}

func (s CoolingStrategy) String() string {
	if n, ok := coolingNames[s]; ok {
		return n
	}
	return fmt.Sprintf("CoolingStrategy(%d)", int(s))
}

// Valid reports whether s is one of the known strategies.
func (s CoolingStrategy) Valid() bool {
	_, ok := coolingNames[s]
	return ok
}

func (s CoolingStrategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown cooling strategy %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *CoolingStrategy) UnmarshalText(b []byte) error {
	v, err := ParseCoolingStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseCoolingStrategy accepts canonical and legacy names, case-insensitive.
func ParseCoolingStrategy(s string) (CoolingStrategy, error) {
	if v, ok := coolingAliases[normalizeName(s)]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown cooling strategy %q", s)
}

func normalizeName(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
