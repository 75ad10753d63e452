package console

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"moviecatalog/movie"
	"moviecatalog/pkg/config"
)

type Options func(s *Session) error

func WithMovieService(svc movie.Service) Options {
	return func(s *Session) error {
		s.MovieService = svc
		return nil
	}
}

func WithConfig(cfg *config.Config) Options {
	return func(s *Session) error {
		if cfg == nil {
			return errors.New("console: nil config")
		}
		s.Config = cfg
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Session) error {
		if l == nil {
			return errors.New("console: nil logger")
		}
		s.Logger = l
		return nil
	}
}

func WithInput(r io.Reader) Options {
	return func(s *Session) error {
		s.In = r
		return nil
	}
}

func WithOutput(w io.Writer) Options {
	return func(s *Session) error {
		s.Out = w
		return nil
	}
}
