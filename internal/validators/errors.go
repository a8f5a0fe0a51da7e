package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID = errors.New("invalid user ID")
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrEmptyTitle    = errors.New("title is required")
	ErrTitleTooLong  = errors.New("title is too long")
)

// maxTitleLength mirrors the VARCHAR(255) column constraint so the request
// is rejected before it reaches the database.
const maxTitleLength = 255
