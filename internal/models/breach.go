package models

import "fmt"

// SafetyRange is an inclusive temperature range in °C.
type SafetyRange struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

// Breach is the classification of a reading against a SafetyRange.
type Breach int

const (
	Normal Breach = iota
	TooLow
	TooHigh
)

var breachNames = map[Breach]string{
	Normal:  "NORMAL",
	TooLow:  "TOO_LOW",
	TooHigh: "TOO_HIGH",
}

func (b Breach) String() string {
	if n, ok := breachNames[b]; ok {
		return n
	}
	return fmt.Sprintf("Breach(%d)", int(b))
}

// Code is the numeric value sent to the controller.
func (b Breach) Code() int { return int(b) }

func (b Breach) MarshalText() ([]byte, error) {
	if _, ok := breachNames[b]; !ok {
		return nil, fmt.Errorf("unknown breach %d", int(b))
	}
	return []byte(b.String()), nil
}

func (b *Breach) UnmarshalText(text []byte) error {
	v, err := ParseBreach(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func ParseBreach(s string) (Breach, error) {
	n := normalizeName(s)
	for b, name := range breachNames {
		if name == n {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown breach %q", s)
}
