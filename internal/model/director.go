package model

import "github.com/samber/lo"

// Director is a film director and the films they directed, in insertion order
type Director struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Bio    string  `json:"bio"`
	Movies []Movie `json:"movies"`
}

// Movie returns the director's movie with the given ID
func (d Director) Movie(movieID string) (Movie, bool) {
	return lo.Find(d.Movies, func(m Movie) bool {
		return m.ID == movieID
	})
}

// HasMovie returns true if one of the director's movies has this ID
func (d Director) HasMovie(movieID string) bool {
	_, ok := d.Movie(movieID)
	return ok
}
