package console

import (
	"strconv"

	"moviecatalog/movie"
)

type AddMovieRequest struct {
	Title       string `form:"title" validate:"required"`
	Director    string `form:"director" validate:"required"`
	ReleaseYear string `form:"release year" validate:"required,integer"`
	Genre       string `form:"genre" validate:"required"`
}

// ToMovie must only be called on a validated request.
func (r AddMovieRequest) ToMovie() movie.Movie {
	year, _ := strconv.Atoi(r.ReleaseYear)
	return movie.Movie{
		Title:       r.Title,
		Director:    r.Director,
		ReleaseYear: year,
		Genre:       r.Genre,
	}
}

// RateMovieRequest leaves the 1-5 range check to the catalog.
type RateMovieRequest struct {
	ID     string `form:"movie id" validate:"required"`
	Rating string `form:"rating" validate:"required,integer"`
}

func (r RateMovieRequest) RatingValue() int {
	v, _ := strconv.Atoi(r.Rating)
	return v
}

type MovieIDRequest struct {
	ID string `form:"movie id" validate:"required"`
}
