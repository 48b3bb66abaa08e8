package dto

// StatusResponse is the generic success/failure envelope used for errors and
// plain acknowledgements.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
