package business_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agurato/moviedir/internal/business"
	"github.com/Agurato/moviedir/internal/infrastructure"
	"github.com/Agurato/moviedir/internal/model"
)

// sequenceGenerator returns the given IDs in order, then numbered ones
type sequenceGenerator struct {
	ids []string
	n   int
}

func (g *sequenceGenerator) next(prefix string) (string, error) {
	g.n++
	if len(g.ids) > 0 {
		id := g.ids[0]
		g.ids = g.ids[1:]
		return id, nil
	}
	return fmt.Sprintf("%s%d", prefix, g.n), nil
}

func (g *sequenceGenerator) NewDirectorID() (string, error) { return g.next("d") }
func (g *sequenceGenerator) NewMovieID() (string, error)    { return g.next("m") }

type failingGenerator struct{}

func (failingGenerator) NewDirectorID() (string, error) { return "", errors.New("no entropy") }
func (failingGenerator) NewMovieID() (string, error)    { return "", errors.New("no entropy") }

func newManager(directors ...model.Director) (*business.DirectorManager, *infrastructure.MemoryStore) {
	store := infrastructure.NewMemoryStore()
	store.ReplaceDirectors(directors)
	return business.NewDirectorManager(store, &sequenceGenerator{}), store
}

func TestAddDirector(t *testing.T) {
	dm, store := newManager()

	director, err := dm.AddDirector("Ang Lee", "Taiwanese filmmaker")
	require.NoError(t, err)
	assert.NotEmpty(t, director.ID)
	assert.Equal(t, "Ang Lee", director.Name)
	assert.Equal(t, "Taiwanese filmmaker", director.Bio)
	assert.Empty(t, director.Movies)

	directors := store.GetDirectors()
	require.Len(t, directors, 1)
	assert.Equal(t, *director, directors[0])
	assert.NotNil(t, directors[0].Movies)
}

func TestAddDirectorKeepsOrder(t *testing.T) {
	initial := []model.Director{{ID: "x", Name: "Agnès Varda", Movies: []model.Movie{}}}
	dm, _ := newManager(initial...)

	names := []string{"Ang Lee", "Céline Sciamma", "Bong Joon-ho", "Jane Campion"}
	for _, name := range names {
		_, err := dm.AddDirector(name, "bio")
		require.NoError(t, err)
	}

	directors := dm.GetDirectors()
	require.Len(t, directors, len(initial)+len(names))
	assert.Equal(t, "Agnès Varda", directors[0].Name)
	for i, name := range names {
		assert.Equal(t, name, directors[i+1].Name)
	}
}

func TestAddDirectorDoesNotChangePreviousSnapshot(t *testing.T) {
	dm, store := newManager(model.Director{ID: "d1", Name: "Ang Lee"})
	before := store.GetDirectors()

	_, err := dm.AddDirector("Jane Campion", "bio")
	require.NoError(t, err)

	assert.Len(t, before, 1)
	assert.Len(t, store.GetDirectors(), 2)
}

func TestAddDirectorRegeneratesTakenID(t *testing.T) {
	store := infrastructure.NewMemoryStore()
	store.ReplaceDirectors([]model.Director{{ID: "taken"}})
	dm := business.NewDirectorManager(store, &sequenceGenerator{ids: []string{"taken", "free"}})

	director, err := dm.AddDirector("Ang Lee", "bio")
	require.NoError(t, err)
	assert.Equal(t, "free", director.ID)
}

func TestAddDirectorGivesUpOnCollisions(t *testing.T) {
	store := infrastructure.NewMemoryStore()
	store.ReplaceDirectors([]model.Director{{ID: "taken"}})
	dm := business.NewDirectorManager(store, &sequenceGenerator{ids: []string{"taken", "taken", "taken", "taken"}})

	_, err := dm.AddDirector("Ang Lee", "bio")
	assert.ErrorIs(t, err, business.ErrIDCollision)
	assert.Len(t, store.GetDirectors(), 1)
}

func TestAddDirectorGeneratorError(t *testing.T) {
	store := infrastructure.NewMemoryStore()
	dm := business.NewDirectorManager(store, failingGenerator{})

	_, err := dm.AddDirector("Ang Lee", "bio")
	assert.Error(t, err)
	assert.Empty(t, store.GetDirectors())
}

func TestAddMovie(t *testing.T) {
	dm, store := newManager(model.Director{ID: "d1", Name: "Ang Lee", Bio: "bio", Movies: []model.Movie{}})

	movie, err := dm.AddMovie("d1", model.Movie{
		Title:  "Life of Pi",
		Time:   127,
		Genres: []string{"Adventure", "Drama"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, movie.ID)

	director := store.GetDirectors()[0]
	assert.Equal(t, []model.Movie{*movie}, director.Movies)
	assert.Equal(t, "Life of Pi", director.Movies[0].Title)
	assert.Equal(t, 127, director.Movies[0].Time)
	assert.Equal(t, []string{"Adventure", "Drama"}, director.Movies[0].Genres)
}

func TestAddMovieDoesNotTouchOtherDirectors(t *testing.T) {
	others := []model.Movie{{ID: "m1", Title: "Cléo from 5 to 7", Time: 90}}
	dm, store := newManager(
		model.Director{ID: "d1", Name: "Ang Lee", Movies: []model.Movie{}},
		model.Director{ID: "d2", Name: "Agnès Varda", Movies: others},
		model.Director{ID: "d3", Name: "Jane Campion"},
	)

	_, err := dm.AddMovie("d1", model.Movie{Title: "Life of Pi", Time: 127})
	require.NoError(t, err)
	_, err = dm.AddMovie("d1", model.Movie{Title: "Hulk", Time: 138})
	require.NoError(t, err)

	directors := store.GetDirectors()
	assert.Len(t, directors[0].Movies, 2)
	assert.Equal(t, "Life of Pi", directors[0].Movies[0].Title)
	assert.Equal(t, "Hulk", directors[0].Movies[1].Title)
	assert.Equal(t, others, directors[1].Movies)
	assert.Empty(t, directors[2].Movies)
}

func TestAddMovieToUnknownDirector(t *testing.T) {
	dm, store := newManager(model.Director{ID: "d1", Name: "Ang Lee", Movies: []model.Movie{}})
	before := store.GetDirectors()

	movie, err := dm.AddMovie("nope", model.Movie{Title: "Life of Pi", Time: 127})
	assert.Nil(t, movie)
	assert.ErrorIs(t, err, business.ErrDirectorNotFound)
	assert.Equal(t, before, store.GetDirectors())
}

func TestAddMovieRegeneratesTakenID(t *testing.T) {
	store := infrastructure.NewMemoryStore()
	store.ReplaceDirectors([]model.Director{{ID: "d1", Movies: []model.Movie{{ID: "m1"}}}})
	dm := business.NewDirectorManager(store, &sequenceGenerator{ids: []string{"m1", "m2"}})

	movie, err := dm.AddMovie("d1", model.Movie{Title: "Life of Pi"})
	require.NoError(t, err)
	assert.Equal(t, "m2", movie.ID)
}

func TestGetDirector(t *testing.T) {
	dm, _ := newManager(model.Director{ID: "d1", Name: "Ang Lee"})

	director, err := dm.GetDirector("d1")
	require.NoError(t, err)
	assert.Equal(t, "Ang Lee", director.Name)

	_, err = dm.GetDirector("d2")
	assert.ErrorIs(t, err, business.ErrDirectorNotFound)
}

func TestGetMovie(t *testing.T) {
	dm, _ := newManager(model.Director{ID: "d1", Movies: []model.Movie{{ID: "m1", Title: "Life of Pi"}}})

	director, movie, err := dm.GetMovie("d1", "m1")
	require.NoError(t, err)
	assert.Equal(t, "d1", director.ID)
	assert.Equal(t, "Life of Pi", movie.Title)

	director, _, err = dm.GetMovie("d1", "m2")
	assert.ErrorIs(t, err, business.ErrMovieNotFound)
	assert.NotNil(t, director)

	_, _, err = dm.GetMovie("d2", "m1")
	assert.ErrorIs(t, err, business.ErrDirectorNotFound)
}
