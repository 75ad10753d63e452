package movie

import (
	"slices"

	"moviecatalog/errs"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrMovieNotFound = errs.Errorf(errs.ENOTFOUND, "movie not found")
	ErrInvalidRating = errs.Errorf(errs.EINVALID, "rating should be between %d and %d", MinRating, MaxRating)
)

// Movie is a single catalog entry. Ratings is append-only and every
// value in it lies within [MinRating, MaxRating].
type Movie struct {
	ID          string
	Title       string
	Director    string
	ReleaseYear int
	Genre       string
	Ratings     []int
}

// ValidRating reports whether r can be appended to a movie's ratings.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// AverageRating returns the mean of the movie's ratings. ok is false
// when the movie has not been rated yet.
func (m Movie) AverageRating() (avg float64, ok bool) {
	if len(m.Ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range m.Ratings {
		sum += r
	}
	return float64(sum) / float64(len(m.Ratings)), true
}

// Clone returns a copy of m that shares no memory with it.
func (m Movie) Clone() Movie {
	m.Ratings = slices.Clone(m.Ratings)
	if m.Ratings == nil {
		m.Ratings = []int{}
	}
	return m
}
