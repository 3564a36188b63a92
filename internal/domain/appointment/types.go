package appointment

// Status of a test-drive appointment.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Style is the (color, label) pair used to render an appointment on the
// calendar grid and in list tags.
type Style struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

var defaultStyle = Style{Color: "default", Label: "Unknown"}

// Style is total: every status maps to exactly one pair, and anything outside
// the known set falls back to a neutral style instead of failing.
func (s Status) Style() Style {
	switch s {
	case StatusScheduled:
		return Style{Color: "blue", Label: "Scheduled"}
	case StatusConfirmed:
		return Style{Color: "green", Label: "Confirmed"}
	case StatusCompleted:
		return Style{Color: "gray", Label: "Completed"}
	case StatusCancelled:
		return Style{Color: "red", Label: "Cancelled"}
	default:
		return defaultStyle
	}
}
