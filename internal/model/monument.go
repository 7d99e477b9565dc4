package model

// Monument is a physical site shown on the map. Latitude and longitude are expected to be
// set together, but nothing enforces it, and their values are stored as given.
type Monument struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

func (m Monument) String() string {
	return m.Name
}

// HasLocation reports whether the monument can be placed on the map.
func (m Monument) HasLocation() bool {
	return m.Latitude != nil && m.Longitude != nil
}
