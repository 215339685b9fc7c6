package models

// MaxLabelLen is the longest accepted DeviceProfile label, in bytes.
const MaxLabelLen = 48

// DeviceProfile describes a battery. Label is cosmetic.
type DeviceProfile struct {
	ID       int             `json:"id,omitempty"`
	Strategy CoolingStrategy `json:"strategy"`
	Label    string          `json:"label"`
}
