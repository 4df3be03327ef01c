package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type MainHandler struct{}

func NewMainHandler() *MainHandler {
	return &MainHandler{}
}

// Error404 displays the 404 page
func (mh MainHandler) Error404(c *gin.Context) {
	renderNotFound(c, "")
}

// GETIndex displays the index page
func (mh MainHandler) GETIndex(c *gin.Context) {
	RenderHTML(c, http.StatusOK, "pages/index.go.html", gin.H{
		"title": "Movie Directory",
	})
}

// GETAbout displays the about page
func (mh MainHandler) GETAbout(c *gin.Context) {
	RenderHTML(c, http.StatusOK, "pages/about.go.html", gin.H{
		"title": "About",
	})
}
