package errs

// Caller-facing error classes. Lower layers attach one of these with Mark so
// handlers can pick a status code without knowing where the failure started.
var (
	// Slot is already held, or another request won the claim.
	ErrSlotUnavailable = New("slot unavailable")

	ErrNotFound     = New("not found")
	ErrValidation   = New("validation failed")
	ErrAccessDenied = New("access denied")

	// Requested status change is not an edge of the booking status graph.
	ErrInvalidTransition = New("invalid status transition")

	// A backing store or collaborator failed.
	ErrProvider = New("provider failure")
)

// Classified reports whether err already carries one of the caller-facing classes.
func Classified(err error) bool {
	for _, ref := range []error{
		ErrSlotUnavailable,
		ErrNotFound,
		ErrValidation,
		ErrAccessDenied,
		ErrInvalidTransition,
		ErrProvider,
	} {
		if Is(err, ref) {
			return true
		}
	}
	return false
}
