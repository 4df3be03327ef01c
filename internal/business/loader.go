package business

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Agurato/moviedir/internal/model"
)

type DirectorSource interface {
	FetchDirectors(ctx context.Context) ([]model.Director, error)
	String() string
}

type DirectorUpdater interface {
	UpdateDirectors(update func(directors []model.Director) ([]model.Director, error)) error
}

// Loader seeds the collection of directors from an external source
type Loader struct {
	DirectorSource
	DirectorUpdater
}

func NewLoader(src DirectorSource, du DirectorUpdater) *Loader {
	return &Loader{
		DirectorSource:  src,
		DirectorUpdater: du,
	}
}

// Load fetches the directors once and puts them ahead of the collection, so directors
// added while the fetch was running are kept after them.
// On failure, the collection is left as it is and the error is logged.
func (l Loader) Load(ctx context.Context) error {
	directors, err := l.DirectorSource.FetchDirectors(ctx)
	if err != nil {
		log.Error().Err(err).Str("source", l.DirectorSource.String()).Msg("Could not load directors")
		return err
	}

	directors = lo.Map(directors, func(d model.Director, _ int) model.Director {
		if d.Movies == nil {
			d.Movies = []model.Movie{}
		}
		for i, m := range d.Movies {
			if m.Genres == nil {
				d.Movies[i].Genres = []string{}
			}
		}
		return d
	})
	err = l.DirectorUpdater.UpdateDirectors(func(current []model.Director) ([]model.Director, error) {
		added := lo.Filter(current, func(d model.Director, _ int) bool {
			_, seeded := findDirector(directors, d.ID)
			return !seeded
		})
		return append(slices.Clip(directors), added...), nil
	})
	if err != nil {
		log.Error().Err(err).Str("source", l.DirectorSource.String()).Msg("Could not load directors")
		return err
	}
	log.Info().Int("directors", len(directors)).Str("source", l.DirectorSource.String()).Msg("Loaded directors")
	return nil
}
