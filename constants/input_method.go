package constants

// InputMethod records how a utility bill entered the system.
type InputMethod string

const (
	InputMethodAuto   InputMethod = "AUTO"   // scanned from an uploaded image
	InputMethodManual InputMethod = "MANUAL" // keyed in by the user
)
