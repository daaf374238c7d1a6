package models

// UserProfile is the single domain record served by the mock API. ID is the
// immutable key into the in-memory record set. PhoneNumber and Bio are
// pointers so that an absent value serializes as a missing key rather than "".
type UserProfile struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

// UpdateProfileRequest is the PUT /api/users/{userId} request body.
type UpdateProfileRequest struct {
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}
