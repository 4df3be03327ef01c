package business

import (
	"slices"

	"github.com/samber/lo"

	"github.com/Agurato/moviedir/internal/model"
)

// AppendDirector returns a new collection made of directors followed by director.
// The input slice is left untouched.
func AppendDirector(directors []model.Director, director model.Director) []model.Director {
	if director.Movies == nil {
		director.Movies = []model.Movie{}
	}
	return append(slices.Clip(directors), director)
}

// AppendMovie returns a new collection where the director with the given ID has movie added
// at the end of their movies. Other directors are shared with the input.
// If no director matches, the input collection is returned and ok is false.
func AppendMovie(directors []model.Director, directorID string, movie model.Movie) (updated []model.Director, ok bool) {
	_, index, found := lo.FindIndexOf(directors, func(d model.Director) bool {
		return d.ID == directorID
	})
	if !found {
		return directors, false
	}

	updated = slices.Clone(directors)
	director := updated[index]
	director.Movies = append(slices.Clip(director.Movies), movie)
	updated[index] = director
	return updated, true
}

// findDirector returns the director with the given ID
func findDirector(directors []model.Director, directorID string) (model.Director, bool) {
	return lo.Find(directors, func(d model.Director) bool {
		return d.ID == directorID
	})
}
