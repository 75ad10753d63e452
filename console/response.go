package console

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"moviecatalog/movie"
)

const noMovies = "(no movies)"

func (s *Session) writeMovies(title string, movies []movie.Movie) error {
	s.printf("\n%s\n", title)
	return s.writeTable(movies)
}

func (s *Session) writeMovie(m movie.Movie) error {
	return s.writeTable([]movie.Movie{m})
}

func (s *Session) writeTable(movies []movie.Movie) error {
	if len(movies) == 0 {
		s.println(noMovies)
		return nil
	}

	tw := tabwriter.NewWriter(s.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDIRECTOR\tYEAR\tGENRE\tRATINGS\tAVERAGE")
	for _, m := range movies {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			m.ID, m.Title, m.Director, m.ReleaseYear, m.Genre,
			formatRatings(m.Ratings), formatAverage(m),
		)
	}
	return tw.Flush()
}

func formatRatings(ratings []int) string {
	if len(ratings) == 0 {
		return "-"
	}
	parts := make([]string, len(ratings))
	for i, r := range ratings {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ",")
}

func formatAverage(m movie.Movie) string {
	avg, ok := m.AverageRating()
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(avg, 'f', 2, 64)
}
