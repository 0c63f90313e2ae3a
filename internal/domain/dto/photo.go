package dto

// CreatePhotoRequest is the body of POST /api/photos.
type CreatePhotoRequest struct {
	Filename    string  `json:"filename"    validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	GuestName   *string `json:"guestName"   validate:"omitempty,max=120"`
	ImageData   *string `json:"imageData"   validate:"omitempty"`
	ImageURL    *string `json:"imageUrl"    validate:"omitempty,url"`
}

type Message struct {
	Message string `json:"message"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
}
