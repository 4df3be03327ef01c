package model

// InvalidDuration is stored as Movie.Time when the entered duration is not a whole number
// of minutes, 0 or more. Any negative Time is treated as invalid.
const InvalidDuration = -1

// Movie is a single film owned by one director
type Movie struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Time   int      `json:"time"` // Duration in minutes
	Genres []string `json:"genres"`
}

// HasDuration returns false if the duration could not be parsed when the movie was added
func (m Movie) HasDuration() bool {
	return m.Time >= 0
}
