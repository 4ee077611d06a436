package captures

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("capture not found")
	ErrPhotoLimit           = errors.New("photo limit reached")
	ErrUnsupportedPhoto     = errors.New("unsupported photo")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrFormNotFound         = errors.New("form not found")
	ErrFormClosed           = errors.New("form closed")
)
