package exam

// ===============================
// Exam Status
// ===============================

// Status is an open label: any string is accepted and stored verbatim.
// The constants are the labels the screens offer.
type Status string

const (
	StatusWaiting    Status = "Em espera"
	StatusInProgress Status = "Em andamento"
	StatusCompleted  Status = "Concluído"
	StatusCancelled  Status = "Cancelado"
)

// InitialStatus is the status of every newly created exam.
func InitialStatus() Status {
	return StatusWaiting
}

// KnownStatuses lists the labels in the order the screens show them.
func KnownStatuses() []Status {
	return []Status{StatusWaiting, StatusInProgress, StatusCompleted, StatusCancelled}
}

// IsKnown reports whether s is one of the offered labels.
func IsKnown(s Status) bool {
	for _, k := range KnownStatuses() {
		if k == s {
			return true
		}
	}
	return false
}
