package movie

import (
	"context"
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Service interface {
	AddMovie(ctx context.Context, m Movie) (string, error)
	RateMovie(ctx context.Context, id string, rating int) error
	AverageRating(ctx context.Context, id string) (float64, bool, error)
	TopRated(ctx context.Context) ([]Movie, error)
	MoviesByGenre(ctx context.Context, genre string) ([]Movie, error)
	MoviesByDirector(ctx context.Context, director string) ([]Movie, error)
	SearchMovies(ctx context.Context, keyword string) ([]Movie, error)
	GetMovie(ctx context.Context, id string) (Movie, bool, error)
	RemoveMovie(ctx context.Context, id string) error
}

// Repository stores movies and assigns their identifiers. AllMovies
// must return movies in insertion order, and GetMovie, AppendRating and
// DeleteMovie must return ErrMovieNotFound for unknown identifiers.
type Repository interface {
	CreateMovie(ctx context.Context, m Movie) (string, error)
	GetMovie(ctx context.Context, id string) (Movie, error)
	AppendRating(ctx context.Context, id string, rating int) error
	DeleteMovie(ctx context.Context, id string) error
	AllMovies(ctx context.Context) ([]Movie, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// AddMovie stores m with a freshly assigned identifier and no ratings.
// Fields are stored as given.
func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (string, error) {
	m.ID = ""
	m.Ratings = []int{}
	return uc.r.CreateMovie(ctx, m)
}

// RateMovie appends rating to the movie identified by id. A missing
// movie is reported before an out-of-range rating.
func (uc *Usecase) RateMovie(ctx context.Context, id string, rating int) error {
	if _, err := uc.r.GetMovie(ctx, id); err != nil {
		return err
	}
	if !ValidRating(rating) {
		return ErrInvalidRating
	}
	return uc.r.AppendRating(ctx, id, rating)
}

// AverageRating reports ok=false both for unknown movies and for movies
// without ratings. Use GetMovie and Movie.AverageRating to tell them apart.
func (uc *Usecase) AverageRating(ctx context.Context, id string) (float64, bool, error) {
	m, ok, err := uc.GetMovie(ctx, id)
	if err != nil || !ok {
		return 0, false, err
	}
	avg, ok := m.AverageRating()
	return avg, ok, nil
}

// TopRated returns every rated movie ordered by descending average.
// Movies with equal averages keep their insertion order.
func (uc *Usecase) TopRated(ctx context.Context) ([]Movie, error) {
	all, err := uc.r.AllMovies(ctx)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		m   Movie
		avg float64
	}
	rs := make([]ranked, 0, len(all))
	for _, m := range all {
		if avg, ok := m.AverageRating(); ok {
			rs = append(rs, ranked{m: m, avg: avg})
		}
	}
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].avg > rs[j].avg
	})

	movies := make([]Movie, len(rs))
	for i, r := range rs {
		movies[i] = r.m
	}
	return movies, nil
}

func (uc *Usecase) MoviesByGenre(ctx context.Context, genre string) ([]Movie, error) {
	genre = lower(genre)
	return uc.filter(ctx, func(m Movie) bool {
		return lower(m.Genre) == genre
	})
}

func (uc *Usecase) MoviesByDirector(ctx context.Context, director string) ([]Movie, error) {
	director = lower(director)
	return uc.filter(ctx, func(m Movie) bool {
		return lower(m.Director) == director
	})
}

// SearchMovies matches keyword as a case-insensitive substring of the title.
func (uc *Usecase) SearchMovies(ctx context.Context, keyword string) ([]Movie, error) {
	keyword = lower(keyword)
	return uc.filter(ctx, func(m Movie) bool {
		return strings.Contains(lower(m.Title), keyword)
	})
}

func (uc *Usecase) GetMovie(ctx context.Context, id string) (Movie, bool, error) {
	m, err := uc.r.GetMovie(ctx, id)
	if errors.Is(err, ErrMovieNotFound) {
		return Movie{}, false, nil
	}
	if err != nil {
		return Movie{}, false, err
	}
	return m, true, nil
}

func (uc *Usecase) RemoveMovie(ctx context.Context, id string) error {
	return uc.r.DeleteMovie(ctx, id)
}

func (uc *Usecase) filter(ctx context.Context, keep func(Movie) bool) ([]Movie, error) {
	all, err := uc.r.AllMovies(ctx)
	if err != nil {
		return nil, err
	}
	movies := []Movie{}
	for _, m := range all {
		if keep(m) {
			movies = append(movies, m)
		}
	}
	return movies, nil
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
