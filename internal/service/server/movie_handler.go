package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Agurato/moviedir/internal/business"
	"github.com/Agurato/moviedir/internal/model"
)

type MovieManager interface {
	GetDirector(directorID string) (*model.Director, error)
	GetMovie(directorID, movieID string) (*model.Director, *model.Movie, error)

	AddMovie(directorID string, movie model.Movie) (*model.Movie, error)
}

type MovieHandler struct {
	MovieManager
}

func NewMovieHandler(mm MovieManager) *MovieHandler {
	return &MovieHandler{
		MovieManager: mm,
	}
}

// GETMovie displays information about one of a director's movies
func (mh MovieHandler) GETMovie(c *gin.Context) {
	director, movie, err := mh.MovieManager.GetMovie(c.Param("id"), c.Param("movieId"))
	switch {
	case errors.Is(err, business.ErrDirectorNotFound):
		renderNotFound(c, "director")
		return
	case errors.Is(err, business.ErrMovieNotFound):
		renderNotFound(c, "movie")
		return
	case err != nil:
		renderError(c, err)
		return
	}

	RenderHTML(c, http.StatusOK, "pages/movie.go.html", gin.H{
		"title":    movie.Title,
		"director": director,
		"movie":    movie,
	})
}

// GETNewMovie displays the add-movie form of a director
func (mh MovieHandler) GETNewMovie(c *gin.Context) {
	director, err := mh.MovieManager.GetDirector(c.Param("id"))
	if errors.Is(err, business.ErrDirectorNotFound) {
		renderNotFound(c, "director")
		return
	} else if err != nil {
		renderError(c, err)
		return
	}

	RenderHTML(c, http.StatusOK, "pages/movie_form.go.html", gin.H{
		"title":    "Add New Movie",
		"director": director,
		"form":     MovieForm{},
	})
}

// POSTNewMovie adds a movie from the form to the director and redirects to the director's page
func (mh MovieHandler) POSTNewMovie(c *gin.Context) {
	directorID := c.Param("id")

	var form MovieForm
	if bindErr := c.ShouldBind(&form); bindErr != nil {
		director, err := mh.MovieManager.GetDirector(directorID)
		if errors.Is(err, business.ErrDirectorNotFound) {
			renderNotFound(c, "director")
			return
		} else if err != nil {
			renderError(c, err)
			return
		}
		RenderHTML(c, http.StatusBadRequest, "pages/movie_form.go.html", gin.H{
			"title":    "Add New Movie",
			"director": director,
			"form":     form,
			"error":    "Title, duration and genres are required",
		})
		return
	}

	movie, err := mh.MovieManager.AddMovie(directorID, form.Movie())
	if errors.Is(err, business.ErrDirectorNotFound) {
		renderNotFound(c, "director")
		return
	} else if err != nil {
		renderError(c, err)
		return
	}

	AddFlash(c, fmt.Sprintf("Added movie %s", movie.Title))
	c.Redirect(http.StatusSeeOther, "/directors/"+url.PathEscape(directorID))
}
