package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Agurato/moviedir/internal/business"
	"github.com/Agurato/moviedir/internal/model"
)

type DirectorManager interface {
	GetDirectors() []model.Director
	GetDirector(directorID string) (*model.Director, error)

	AddDirector(name, bio string) (*model.Director, error)
}

type DirectorHandler struct {
	DirectorManager
}

func NewDirectorHandler(dm DirectorManager) *DirectorHandler {
	return &DirectorHandler{
		DirectorManager: dm,
	}
}

// GETDirectors displays the list of directors
func (dh DirectorHandler) GETDirectors(c *gin.Context) {
	RenderHTML(c, http.StatusOK, "pages/directors.go.html", gin.H{
		"title":     "Directors",
		"directors": dh.DirectorManager.GetDirectors(),
	})
}

// GETDirector displays the director's bio and their movies
func (dh DirectorHandler) GETDirector(c *gin.Context) {
	director, err := dh.DirectorManager.GetDirector(c.Param("id"))
	if errors.Is(err, business.ErrDirectorNotFound) {
		renderNotFound(c, "director")
		return
	} else if err != nil {
		renderError(c, err)
		return
	}

	RenderHTML(c, http.StatusOK, "pages/director.go.html", gin.H{
		"title":    director.Name,
		"director": director,
	})
}

// GETNewDirector displays the add-director form
func (dh DirectorHandler) GETNewDirector(c *gin.Context) {
	RenderHTML(c, http.StatusOK, "pages/director_form.go.html", gin.H{
		"title": "Add New Director",
		"form":  DirectorForm{},
	})
}

// POSTNewDirector adds a director from the form and redirects to the list of directors
func (dh DirectorHandler) POSTNewDirector(c *gin.Context) {
	var form DirectorForm
	if err := c.ShouldBind(&form); err != nil {
		RenderHTML(c, http.StatusBadRequest, "pages/director_form.go.html", gin.H{
			"title": "Add New Director",
			"form":  form,
			"error": "Name and bio are required",
		})
		return
	}

	director, err := dh.DirectorManager.AddDirector(form.Name, form.Bio)
	if err != nil {
		renderError(c, err)
		return
	}

	AddFlash(c, fmt.Sprintf("Added director %s", director.Name))
	c.Redirect(http.StatusSeeOther, "/directors")
}
