package service

// ProviderListing is one entry of the static specialist directory.
type ProviderListing struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Distance  string  `json:"distance"`
	Location  string  `json:"location"`
	Rating    float64 `json:"rating"`
}

// providerDirectory is static reference data, never mutated.
var providerDirectory = []ProviderListing{
	{
		ID:        "1",
		Name:      "Dr. Sarah Chen",
		Specialty: "Allergist & Immunologist",
		Distance:  "2.3 miles",
		Location:  "123 Medical Center Dr",
		Rating:    4.8,
	},
	{
		ID:        "2",
		Name:      "Dr. Michael Rodriguez",
		Specialty: "Dermatologist",
		Distance:  "3.1 miles",
		Location:  "456 Health Parkway",
		Rating:    4.6,
	},
	{
		ID:        "3",
		Name:      "Dr. Emily Johnson",
		Specialty: "Allergist & Immunologist",
		Distance:  "4.5 miles",
		Location:  "789 Wellness Blvd",
		Rating:    4.9,
	},
}

// Providers returns the specialist directory.
func Providers() []ProviderListing {
	out := make([]ProviderListing, len(providerDirectory))
	copy(out, providerDirectory)
	return out
}
