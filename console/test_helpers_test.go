package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"moviecatalog/console"
	"moviecatalog/movie"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) AddMovie(ctx context.Context, mv movie.Movie) (string, error) {
	args := m.Called(ctx, mv)
	return args.String(0), args.Error(1)
}

func (m *MockMovieService) RateMovie(ctx context.Context, id string, rating int) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *MockMovieService) AverageRating(ctx context.Context, id string) (float64, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

func (m *MockMovieService) TopRated(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) MoviesByGenre(ctx context.Context, genre string) ([]movie.Movie, error) {
	args := m.Called(ctx, genre)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) MoviesByDirector(ctx context.Context, director string) ([]movie.Movie, error) {
	args := m.Called(ctx, director)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) SearchMovies(ctx context.Context, keyword string) ([]movie.Movie, error) {
	args := m.Called(ctx, keyword)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, id string) (movie.Movie, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Bool(1), args.Error(2)
}

func (m *MockMovieService) RemoveMovie(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// runSession feeds lines to a new session and returns everything it printed.
func runSession(t *testing.T, svc movie.Service, lines ...string) string {
	t.Helper()
	out := new(bytes.Buffer)
	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}

	s, err := console.New(
		console.WithMovieService(svc),
		console.WithInput(strings.NewReader(input)),
		console.WithOutput(out),
	)
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))
	return out.String()
}
