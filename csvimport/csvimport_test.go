package csvimport_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviecatalog/csvimport"
	"moviecatalog/memory"
	"moviecatalog/movie"
)

func newCatalog() *movie.Usecase {
	return movie.NewUsecase(memory.NewMovieRepository())
}

func TestImportFile(t *testing.T) {
	ctx := context.Background()
	uc := newCatalog()

	count, err := csvimport.ImportFile(ctx, uc, "testdata/movies.csv", 0)

	require.NoError(t, err)
	assert.Equal(t, 4, count)

	m, ok, err := uc.GetMovie(ctx, "MV3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Crouching Tiger, Hidden Dragon", m.Title)
	assert.Empty(t, m.Ratings)

	top, err := uc.TopRated(ctx)
	require.NoError(t, err)
	titles := make([]string, len(top))
	for i, m := range top {
		titles[i] = m.Title
	}
	assert.Equal(t, []string{"The Matrix", "Inception", "Heat"}, titles)
}

func TestImportFile_MissingFile(t *testing.T) {
	_, err := csvimport.ImportFile(context.Background(), newCatalog(), "testdata/nope.csv", 0)

	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		limit   int
		want    int
		wantErr string
	}{
		{
			name: "columns in any order without ratings",
			csv:  "Genre,Title,Release_Year,Director\nDrama,Amelie,2001,Jeunet\n",
			want: 1,
		},
		{
			name: "skips malformed rows",
			csv: "title,director,release_year,genre,ratings\n" +
				"Good,A,2000,X,3\n" +
				"BadYear,A,soon,X,\n" +
				"BadRating,A,2000,X,7\n" +
				"NotARating,A,2000,X,great\n" +
				"Short,A\n",
			want: 1,
		},
		{
			name:  "respects limit",
			csv:   "title,director,release_year,genre\nA,B,1,C\nD,E,2,F\nG,H,3,I\n",
			limit: 2,
			want:  2,
		},
		{
			name:    "requires header columns",
			csv:     "title,director\nA,B\n",
			wantErr: "missing required columns",
		},
		{
			name:    "empty input",
			csv:     "",
			wantErr: "EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := csvimport.Import(context.Background(), newCatalog(), strings.NewReader(tt.csv), tt.limit)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}

type failingService struct {
	movie.Service
}

func (failingService) AddMovie(context.Context, movie.Movie) (string, error) {
	return "", errors.New("catalog unavailable")
}

func TestImport_StopsOnServiceError(t *testing.T) {
	csv := "title,director,release_year,genre\nA,B,1,C\n"

	count, err := csvimport.Import(context.Background(), failingService{}, strings.NewReader(csv), 0)

	assert.EqualError(t, err, "catalog unavailable")
	assert.Zero(t, count)
}

type rejectingRatings struct {
	*movie.Usecase
}

func (rejectingRatings) RateMovie(context.Context, string, int) error {
	return errors.New("ratings unavailable")
}

func TestImport_KeepsMovieWhenRatingFails(t *testing.T) {
	ctx := context.Background()
	uc := newCatalog()
	csv := "title,director,release_year,genre,ratings\nHeat,Mann,1995,Crime,4|5\n"

	count, err := csvimport.Import(ctx, rejectingRatings{uc}, strings.NewReader(csv), 0)

	assert.EqualError(t, err, "rate MV1: movie kept with partial ratings: ratings unavailable")
	assert.Zero(t, count)
	m, ok, err := uc.GetMovie(ctx, "MV1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Heat", m.Title)
	assert.Empty(t, m.Ratings)
}
