package memory

import (
	"context"
	"fmt"
	"slices"

	"moviecatalog/movie"
)

const idPrefix = "MV"

// MovieRepository implements movie.Repository on top of a map indexed by
// movie ID plus a slice holding insertion order. It is not safe for
// concurrent use.
type MovieRepository struct {
	nextID int
	order  []string
	movies map[string]*movie.Movie
}

// NewMovieRepository creates an empty repository whose first ID is MV1.
func NewMovieRepository() *MovieRepository {
	return &MovieRepository{
		nextID: 1,
		movies: map[string]*movie.Movie{},
	}
}

// CreateMovie stores a copy of m under a new ID. IDs are never reused,
// even after the movie holding them is deleted.
func (r *MovieRepository) CreateMovie(_ context.Context, m movie.Movie) (string, error) {
	id := fmt.Sprintf("%s%d", idPrefix, r.nextID)
	r.nextID++

	m = m.Clone()
	m.ID = id
	r.movies[id] = &m
	r.order = append(r.order, id)
	return id, nil
}

func (r *MovieRepository) GetMovie(_ context.Context, id string) (movie.Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return movie.Movie{}, movie.ErrMovieNotFound
	}
	return m.Clone(), nil
}

func (r *MovieRepository) AppendRating(_ context.Context, id string, rating int) error {
	m, ok := r.movies[id]
	if !ok {
		return movie.ErrMovieNotFound
	}
	m.Ratings = append(m.Ratings, rating)
	return nil
}

func (r *MovieRepository) DeleteMovie(_ context.Context, id string) error {
	if _, ok := r.movies[id]; !ok {
		return movie.ErrMovieNotFound
	}
	delete(r.movies, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return nil
}

// AllMovies returns copies of every stored movie in insertion order.
func (r *MovieRepository) AllMovies(_ context.Context) ([]movie.Movie, error) {
	movies := make([]movie.Movie, 0, len(r.order))
	for _, id := range r.order {
		movies = append(movies, r.movies[id].Clone())
	}
	return movies, nil
}
