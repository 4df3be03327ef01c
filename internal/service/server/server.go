package server

import (
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const sessionName = "moviedir-session"

// NewServer initializes the router. Routes are registered in matching order
func NewServer(cookieSecret []byte, templates fs.FS, mainHandler *MainHandler, directorHandler *DirectorHandler, movieHandler *MovieHandler) (*gin.Engine, error) {
	router := gin.Default()

	router.SetTrustedProxies(nil)

	// Flash messages are kept in a cookie
	store := cookie.NewStore(cookieSecret)
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(sessionName, store))

	// Load templates
	tmpl, err := loadTemplates(templates)
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// 404
	router.NoRoute(mainHandler.Error404)

	router.GET("/", mainHandler.GETIndex)
	router.GET("/about", mainHandler.GETAbout)

	router.GET("/directors", directorHandler.GETDirectors)
	router.GET("/directors/new", directorHandler.GETNewDirector)
	router.POST("/directors/new", directorHandler.POSTNewDirector)
	router.GET("/directors/:id", directorHandler.GETDirector)

	// The literal "new" is registered before the movie ID parameter
	router.GET("/directors/:id/movies/new", movieHandler.GETNewMovie)
	router.POST("/directors/:id/movies/new", movieHandler.POSTNewMovie)
	router.GET("/directors/:id/movies/:movieId", movieHandler.GETMovie)

	return router, nil
}

// loadTemplates parses the layouts and pages with the template functions
func loadTemplates(templates fs.FS) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": func(elems []string, sep string) string {
			return strings.Join(elems, sep)
		},
		"title": func(s string) string {
			return cases.Title(language.English).String(s)
		},
	}
	return template.New("").Funcs(funcMap).ParseFS(templates, "templates/layout/*.go.html", "templates/pages/*.go.html")
}

// RenderHTML renders HTML pages and adds the pending flash messages
func RenderHTML(c *gin.Context, code int, name string, obj gin.H) {
	session := sessions.Default(c)
	if flashes := session.Flashes(); len(flashes) > 0 {
		obj["flashes"] = flashes
		if err := session.Save(); err != nil {
			log.Error().Err(err).Msg("Could not clear flash messages")
		}
	}
	c.HTML(code, name, obj)
}

// AddFlash stores a message to be displayed on the next rendered page
func AddFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("Could not save flash message")
	}
}

func renderNotFound(c *gin.Context, what string) {
	RenderHTML(c, http.StatusNotFound, "pages/404.go.html", gin.H{
		"title": "404 - Not Found",
		"what":  what,
	})
}

func renderError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	RenderHTML(c, http.StatusInternalServerError, "pages/500.go.html", gin.H{
		"title": "500 - Internal Server Error",
		"error": err.Error(),
	})
}
