package main

import (
	"context"
	"crypto/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Agurato/moviedir/internal/business"
	"github.com/Agurato/moviedir/internal/infrastructure"
	"github.com/Agurato/moviedir/internal/service/server"
	"github.com/Agurato/moviedir/web"
)

// Environment variables names
const (
	EnvListenAddr      = "LISTEN_ADDR"
	EnvDirectorsSource = "DIRECTORS_SOURCE" // URL or path of a JSON array of directors
	EnvCookieSecret    = "COOKIE_SECRET"
	EnvFetchTimeout    = "FETCH_TIMEOUT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogPretty       = "LOG_PRETTY"
	EnvGinMode         = "GIN_MODE"
)

func main() {
	godotenv.Load()

	setupLogger(os.Getenv(EnvLogLevel), os.Getenv(EnvLogPretty) != "")
	if mode := os.Getenv(EnvGinMode); mode != "" {
		gin.SetMode(mode)
	}

	store := infrastructure.NewMemoryStore()
	dm := business.NewDirectorManager(store, business.NewUUIDGenerator())

	fetchTimeout := time.Duration(0)
	if timeout := os.Getenv(EnvFetchTimeout); timeout != "" {
		var err error
		fetchTimeout, err = time.ParseDuration(timeout)
		if err != nil {
			log.Fatal().Err(err).Msgf("error getting %s", EnvFetchTimeout)
		}
	}

	// The directors are loaded in the background: pages show an empty collection until then
	if src, err := infrastructure.NewDirectorSource(os.Getenv(EnvDirectorsSource), fetchTimeout); err != nil {
		log.Warn().Err(err).Msg("Starting with no directors")
	} else {
		loader := business.NewLoader(src, store)
		go loader.Load(context.Background())
	}

	srv, err := server.NewServer(
		cookieSecret(os.Getenv(EnvCookieSecret)),
		web.Templates,
		server.NewMainHandler(),
		server.NewDirectorHandler(dm),
		server.NewMovieHandler(dm))
	if err != nil {
		log.Fatal().Err(err).Msg("Could not initialize server")
	}

	addr := os.Getenv(EnvListenAddr)
	if addr == "" {
		addr = ":8080"
	}
	log.Info().Str("addr", addr).Msg("Listening")
	if err := srv.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func setupLogger(level string, pretty bool) {
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// cookieSecret returns the configured secret, or a random one valid until the process stops
func cookieSecret(secret string) []byte {
	if secret != "" {
		return []byte(secret)
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatal().Err(err).Msg("Could not generate cookie secret")
	}
	log.Warn().Msgf("%s is not set, sessions will not survive a restart", EnvCookieSecret)
	return key
}
