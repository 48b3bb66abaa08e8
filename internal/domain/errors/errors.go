package errors

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrMissingRequester      = errors.New("requester id is required")
	ErrOfferAlreadySubmitted = errors.New("offer already submitted")
	ErrOfferAccepted         = errors.New("offer already accepted")
	ErrInvalidOrderStatus    = errors.New("invalid order status")
)
