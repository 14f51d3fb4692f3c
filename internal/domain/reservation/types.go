package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// Occupies reports whether a reservation in this status blocks the slot.
// Pending already holds the slot; confirmation changes nothing for conflicts.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}
