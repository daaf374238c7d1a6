package store

import "profile-service/models"

func strPtr(value string) *string {
	return &value
}

// SeedProfiles returns the three fixed records the service boots with.
// Nothing is persisted across restarts.
func SeedProfiles() []models.UserProfile {
	return []models.UserProfile{
		{
			ID:          "1",
			Email:       "alice.johnson@example.com",
			FirstName:   "Alice",
			LastName:    "Johnson",
			PhoneNumber: strPtr("555-0101"),
			Bio:         strPtr("Frontend engineer who collects mechanical keyboards."),
		},
		{
			ID:        "2",
			Email:     "bob.martinez@example.com",
			FirstName: "Bob",
			LastName:  "Martinez",
			Bio:       strPtr("Weekend cyclist, weekday backend developer."),
		},
		{
			ID:        "3",
			Email:     "carol.nguyen@example.com",
			FirstName: "Carol",
			LastName:  "Nguyen",
		},
	}
}
