package handlers

// Fixed error bodies. Failure details are logged, never returned.
const (
	MsgTermNotFound         = "Term not found"
	MsgCouldNotRetrieveTerm = "Could not retrieve term"
	MsgCouldNotRetrieveList = "Could not retrieve terms"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}
