package console

import (
	"context"
	"errors"
)

func (s *Session) RegisterMovieCommands() {
	s.register("1", "Add Movie", s.handleAddMovie)
	s.register("2", "Rate Movie", s.handleRateMovie)
	s.register("3", "Get Movie Rating", s.handleAverageRating)
	s.register("4", "Get Top Rated Movies", s.handleTopRated)
	s.register("5", "Get Movies by Genre", s.handleMoviesByGenre)
	s.register("6", "Get Movies by Director", s.handleMoviesByDirector)
	s.register("7", "Search Movies", s.handleSearchMovies)
	s.register("8", "Get Movie Details", s.handleGetMovie)
	s.register("9", "Remove Movie", s.handleRemoveMovie)
}

type formField struct {
	label string
	dst   *string
}

// bind prompts for every field in order. An oversized answer does not stop
// the form, so the remaining answers are not read as menu choices.
func (s *Session) bind(fields ...formField) error {
	var lineErr error
	for _, f := range fields {
		v, err := s.prompt(f.label)
		if errors.Is(err, ErrLineTooLong) {
			if lineErr == nil {
				lineErr = err
			}
			continue
		}
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return lineErr
}

func (s *Session) handleAddMovie(ctx context.Context) error {
	var req AddMovieRequest
	err := s.bind(
		formField{"Enter Title: ", &req.Title},
		formField{"Enter Director: ", &req.Director},
		formField{"Enter Release Year: ", &req.ReleaseYear},
		formField{"Enter Genre: ", &req.Genre},
	)
	if err != nil {
		return err
	}
	if err := s.validator.Validate(&req); err != nil {
		return err
	}

	id, err := s.MovieService.AddMovie(ctx, req.ToMovie())
	if err != nil {
		return err
	}

	s.Logger.Infow("movie added", "session_id", s.ID, "movie_id", id)
	s.printf("Movie added successfully with ID: %s\n", id)
	return nil
}

func (s *Session) handleRateMovie(ctx context.Context) error {
	var req RateMovieRequest
	err := s.bind(
		formField{"Enter Movie ID: ", &req.ID},
		formField{"Enter Rating (1-5): ", &req.Rating},
	)
	if err != nil {
		return err
	}
	if err := s.validator.Validate(&req); err != nil {
		return err
	}

	if err := s.MovieService.RateMovie(ctx, req.ID, req.RatingValue()); err != nil {
		return err
	}

	s.Logger.Infow("movie rated", "session_id", s.ID, "movie_id", req.ID, "rating", req.RatingValue())
	s.println("Rating added successfully.")
	return nil
}

func (s *Session) handleAverageRating(ctx context.Context) error {
	var req MovieIDRequest
	if err := s.bind(formField{"Enter Movie ID: ", &req.ID}); err != nil {
		return err
	}
	if err := s.validator.Validate(&req); err != nil {
		return err
	}

	avg, ok, err := s.MovieService.AverageRating(ctx, req.ID)
	if err != nil {
		return err
	}
	if !ok {
		s.println("No ratings available.")
		return nil
	}
	s.printf("Average Rating: %.2f\n", avg)
	return nil
}

func (s *Session) handleTopRated(ctx context.Context) error {
	movies, err := s.MovieService.TopRated(ctx)
	if err != nil {
		return err
	}
	return s.writeMovies("Top Rated Movies:", movies)
}

func (s *Session) handleMoviesByGenre(ctx context.Context) error {
	genre, err := s.prompt("Enter Genre: ")
	if err != nil {
		return err
	}
	movies, err := s.MovieService.MoviesByGenre(ctx, genre)
	if err != nil {
		return err
	}
	return s.writeMovies("Movies in Genre:", movies)
}

func (s *Session) handleMoviesByDirector(ctx context.Context) error {
	director, err := s.prompt("Enter Director: ")
	if err != nil {
		return err
	}
	movies, err := s.MovieService.MoviesByDirector(ctx, director)
	if err != nil {
		return err
	}
	return s.writeMovies("Movies by Director:", movies)
}

func (s *Session) handleSearchMovies(ctx context.Context) error {
	keyword, err := s.prompt("Enter Keyword: ")
	if err != nil {
		return err
	}
	movies, err := s.MovieService.SearchMovies(ctx, keyword)
	if err != nil {
		return err
	}
	return s.writeMovies("Search Results:", movies)
}

func (s *Session) handleGetMovie(ctx context.Context) error {
	var req MovieIDRequest
	if err := s.bind(formField{"Enter Movie ID: ", &req.ID}); err != nil {
		return err
	}
	if err := s.validator.Validate(&req); err != nil {
		return err
	}

	m, ok, err := s.MovieService.GetMovie(ctx, req.ID)
	if err != nil {
		return err
	}
	if !ok {
		s.println("Movie not found.")
		return nil
	}
	return s.writeMovie(m)
}

func (s *Session) handleRemoveMovie(ctx context.Context) error {
	var req MovieIDRequest
	if err := s.bind(formField{"Enter Movie ID: ", &req.ID}); err != nil {
		return err
	}
	if err := s.validator.Validate(&req); err != nil {
		return err
	}

	if err := s.MovieService.RemoveMovie(ctx, req.ID); err != nil {
		return err
	}

	s.Logger.Infow("movie removed", "session_id", s.ID, "movie_id", req.ID)
	s.println("Movie removed successfully.")
	return nil
}
