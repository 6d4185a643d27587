package models

// Address holds the place-level fields of a Nominatim address record.
// An empty field means the upstream record did not carry it.
type Address struct {
	Municipality string `json:"municipality,omitempty"`
	City         string `json:"city,omitempty"`
	Town         string `json:"town,omitempty"`
	Village      string `json:"village,omitempty"`
	Region       string `json:"region,omitempty"`
	State        string `json:"state,omitempty"`
	County       string `json:"county,omitempty"`
	Country      string `json:"country,omitempty"`
}
