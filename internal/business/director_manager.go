package business

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/Agurato/moviedir/internal/model"
)

// Number of times a freshly generated ID is regenerated if it is already taken
const maxIDAttempts = 3

var (
	ErrDirectorNotFound = errors.New("director not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrIDCollision      = errors.New("could not generate a unique ID")
)

type DirectorStorer interface {
	GetDirectors() []model.Director
	UpdateDirectors(update func(directors []model.Director) ([]model.Director, error)) error
}

type IDGenerator interface {
	NewDirectorID() (string, error)
	NewMovieID() (string, error)
}

type DirectorManager struct {
	DirectorStorer
	IDGenerator
}

func NewDirectorManager(ds DirectorStorer, idg IDGenerator) *DirectorManager {
	return &DirectorManager{
		DirectorStorer: ds,
		IDGenerator:    idg,
	}
}

// GetDirectors returns the current collection of directors
func (dm DirectorManager) GetDirectors() []model.Director {
	return dm.DirectorStorer.GetDirectors()
}

// GetDirector returns a Director from its ID
func (dm DirectorManager) GetDirector(directorID string) (*model.Director, error) {
	director, ok := findDirector(dm.DirectorStorer.GetDirectors(), directorID)
	if !ok {
		return nil, fmt.Errorf("could not get director '%s': %w", directorID, ErrDirectorNotFound)
	}
	return &director, nil
}

// GetMovie returns one of a director's movies from both IDs
func (dm DirectorManager) GetMovie(directorID, movieID string) (*model.Director, *model.Movie, error) {
	director, err := dm.GetDirector(directorID)
	if err != nil {
		return nil, nil, err
	}
	movie, ok := director.Movie(movieID)
	if !ok {
		return director, nil, fmt.Errorf("could not get movie '%s' of director '%s': %w", movieID, directorID, ErrMovieNotFound)
	}
	return director, &movie, nil
}

// AddDirector creates a director without movies and adds it at the end of the collection
func (dm DirectorManager) AddDirector(name, bio string) (*model.Director, error) {
	var director model.Director
	err := dm.DirectorStorer.UpdateDirectors(func(directors []model.Director) ([]model.Director, error) {
		id, err := dm.uniqueID(dm.IDGenerator.NewDirectorID, func(id string) bool {
			return lo.ContainsBy(directors, func(d model.Director) bool {
				return d.ID == id
			})
		})
		if err != nil {
			return nil, err
		}
		director = model.Director{
			ID:     id,
			Name:   name,
			Bio:    bio,
			Movies: []model.Movie{},
		}
		return AppendDirector(directors, director), nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not add director '%s': %w", name, err)
	}
	return &director, nil
}

// AddMovie gives movie a new ID and adds it at the end of the director's movies.
// The collection is left unchanged if the director does not exist.
func (dm DirectorManager) AddMovie(directorID string, movie model.Movie) (*model.Movie, error) {
	err := dm.DirectorStorer.UpdateDirectors(func(directors []model.Director) ([]model.Director, error) {
		director, ok := findDirector(directors, directorID)
		if !ok {
			return nil, ErrDirectorNotFound
		}
		id, err := dm.uniqueID(dm.IDGenerator.NewMovieID, director.HasMovie)
		if err != nil {
			return nil, err
		}
		movie.ID = id
		updated, _ := AppendMovie(directors, directorID, movie)
		return updated, nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not add movie '%s' to director '%s': %w", movie.Title, directorID, err)
	}
	return &movie, nil
}

// uniqueID generates IDs until one is not taken
func (dm DirectorManager) uniqueID(generate func() (string, error), taken func(id string) bool) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id, err := generate()
		if err != nil {
			return "", err
		}
		if !taken(id) {
			return id, nil
		}
	}
	return "", ErrIDCollision
}
