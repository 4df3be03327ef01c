package server

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/Agurato/moviedir/internal/model"
)

// DirectorForm holds the add-director form fields
type DirectorForm struct {
	Name string `form:"name" binding:"required"`
	Bio  string `form:"bio" binding:"required"`
}

// MovieForm holds the add-movie form fields. Time is kept as entered
type MovieForm struct {
	Title  string `form:"title" binding:"required"`
	Time   string `form:"time" binding:"required"`
	Genres string `form:"genres" binding:"required"`
}

// Movie builds the movie described by the form, without ID
func (mf MovieForm) Movie() model.Movie {
	return model.Movie{
		Title:  mf.Title,
		Time:   ParseDuration(mf.Time),
		Genres: ParseGenres(mf.Genres),
	}
}

// ParseDuration parses a number of minutes, or returns model.InvalidDuration
// if input is not a number or is negative
func ParseDuration(input string) int {
	minutes, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || minutes < 0 {
		return model.InvalidDuration
	}
	return minutes
}

// ParseGenres splits comma-separated genres and trims each of them. Empty genres are kept
func ParseGenres(input string) []string {
	return lo.Map(strings.Split(input, ","), func(genre string, _ int) string {
		return strings.TrimSpace(genre)
	})
}
