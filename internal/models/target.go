package models

import "fmt"

// Target selects the notification sink.
type Target int

const (
	ToController Target = iota
	ToEmail
)

func (t Target) String() string {
	switch t {
	case ToController:
		return "CONTROLLER"
	case ToEmail:
		return "EMAIL"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

func (t Target) MarshalText() ([]byte, error) {
	if t != ToController && t != ToEmail {
		return nil, fmt.Errorf("unknown target %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Target) UnmarshalText(b []byte) error {
	v, err := ParseTarget(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseTarget accepts CONTROLLER/EMAIL and the TO_ prefixed forms.
func ParseTarget(s string) (Target, error) {
	switch normalizeName(s) {
	case "CONTROLLER", "TO_CONTROLLER":
		return ToController, nil
	case "EMAIL", "TO_EMAIL":
		return ToEmail, nil
	}
	return 0, fmt.Errorf("unknown target %q", s)
}
