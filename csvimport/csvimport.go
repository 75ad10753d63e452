package csvimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"moviecatalog/movie"
)

const ratingSeparator = "|"

type columns struct {
	title, director, year, genre, ratings int
}

// ImportFile loads movies from the CSV file at path into svc.
func ImportFile(ctx context.Context, svc movie.Service, path string, limit int) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return Import(ctx, svc, file, limit)
}

// Import adds every well-formed row of r to svc and returns how many rows
// were imported. The header must name title, director, release_year and
// genre. An optional ratings column holds values separated by "|".
// Malformed rows are skipped. A limit <= 0 imports all rows.
//
// Rows are added one at a time. When rating a freshly added movie fails,
// Import stops and that movie stays in the catalog with the ratings applied
// so far. It is not included in the returned count.
func Import(ctx context.Context, svc movie.Service, r io.Reader, limit int) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	cols, err := parseHeader(reader)
	if err != nil {
		return 0, err
	}

	count := 0
	for limit <= 0 || count < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}
		m, ratings, ok := parseRecord(record, cols)
		if !ok {
			continue
		}

		id, err := svc.AddMovie(ctx, m)
		if err != nil {
			return count, err
		}
		for _, rating := range ratings {
			if err := svc.RateMovie(ctx, id, rating); err != nil {
				return count, fmt.Errorf("rate %s: movie kept with partial ratings: %w", id, err)
			}
		}

		count++
	}

	return count, nil
}

func parseHeader(reader *csv.Reader) (columns, error) {
	header, err := reader.Read()
	if err != nil {
		return columns{}, err
	}

	cols := columns{title: -1, director: -1, year: -1, genre: -1, ratings: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "title":
			cols.title = i
		case "director":
			cols.director = i
		case "release_year":
			cols.year = i
		case "genre":
			cols.genre = i
		case "ratings":
			cols.ratings = i
		}
	}
	if cols.title == -1 || cols.director == -1 || cols.year == -1 || cols.genre == -1 {
		return columns{}, errors.New("missing required columns in csv header")
	}

	return cols, nil
}

func parseRecord(record []string, cols columns) (movie.Movie, []int, bool) {
	field := func(i int) (string, bool) {
		if i < 0 || i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	title, ok1 := field(cols.title)
	director, ok2 := field(cols.director)
	rawYear, ok3 := field(cols.year)
	genre, ok4 := field(cols.genre)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return movie.Movie{}, nil, false
	}

	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return movie.Movie{}, nil, false
	}

	var ratings []int
	if raw, ok := field(cols.ratings); ok && raw != "" {
		for _, part := range strings.Split(raw, ratingSeparator) {
			r, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || !movie.ValidRating(r) {
				return movie.Movie{}, nil, false
			}
			ratings = append(ratings, r)
		}
	}

	return movie.Movie{
		Title:       title,
		Director:    director,
		ReleaseYear: year,
		Genre:       genre,
	}, ratings, true
}
