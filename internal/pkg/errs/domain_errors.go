package errs

// Kind is the stable, machine-readable name of a failure surfaced to callers.
type Kind string

const (
	KindInvalidTimeRange    Kind = "INVALID_TIME_RANGE"
	KindSlotOverlap         Kind = "SLOT_OVERLAP"
	KindSlotNotFound        Kind = "SLOT_NOT_FOUND"
	KindAlreadyBooked       Kind = "ALREADY_BOOKED"
	KindAppointmentNotFound Kind = "APPOINTMENT_NOT_FOUND"
	KindAlreadyCancelled    Kind = "ALREADY_CANCELLED"
	KindForbidden           Kind = "FORBIDDEN"
	KindTransactionConflict Kind = "TRANSACTION_CONFLICT"
	KindStorageUnavailable  Kind = "STORAGE_UNAVAILABLE"
	KindValidation          Kind = "VALIDATION_FAILED"
)

// Sentinel errors shared by the domain, usecase and infra layers.
// Concrete errors are attached to one of these with Mark.
var (
	// Availability errors
	ErrInvalidTimeRange = New("invalid time range")
	ErrSlotOverlap      = New("time slot overlaps with existing availability")
	ErrSlotNotFound     = New("availability slot not found")
	ErrAlreadyBooked    = New("time slot is already booked")

	// Appointment errors
	ErrAppointmentNotFound = New("appointment not found")
	ErrAlreadyCancelled    = New("appointment is already cancelled")
	ErrForbidden           = New("not authorized for this appointment")

	// Storage errors
	ErrTransactionConflict = New("transaction conflict")
	ErrStorageUnavailable  = New("storage unavailable")

	// Request errors
	ErrValidation = New("validation failed")
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidTimeRange, KindInvalidTimeRange},
	{ErrSlotOverlap, KindSlotOverlap},
	{ErrSlotNotFound, KindSlotNotFound},
	{ErrAlreadyBooked, KindAlreadyBooked},
	{ErrAppointmentNotFound, KindAppointmentNotFound},
	{ErrAlreadyCancelled, KindAlreadyCancelled},
	{ErrForbidden, KindForbidden},
	{ErrTransactionConflict, KindTransactionConflict},
	{ErrStorageUnavailable, KindStorageUnavailable},
	{ErrValidation, KindValidation},
}

// KindOf classifies err. Anything not marked with a known sentinel is an
// unexpected storage fault.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if Is(err, k.err) {
			return k.kind
		}
	}
	return KindStorageUnavailable
}

// Retryable reports whether the caller may safely retry the request.
func (k Kind) Retryable() bool {
	return k == KindTransactionConflict || k == KindStorageUnavailable
}

func (k Kind) String() string {
	return string(k)
}
