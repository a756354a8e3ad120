package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDistanceSet_DedupesAndSorts(t *testing.T) {
	set, err := ParseDistanceSet("5, 3, 3, 7")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5, 7}, set.Values())
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, 7.0, set.Max())
}

func TestParseDistances_SkipsEmptyTokens(t *testing.T) {
	values, err := ParseDistances(" 10 ,, 20, ")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, values)
}

func TestParseDistances_RejectsNonNumericToken(t *testing.T) {
	_, err := ParseDistances("10, abc, 20")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "abc", parseErr.Token)
	assert.Contains(t, parseErr.Error(), "abc")
}

func TestNewDistanceSet_Validation(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   error
	}{
		{name: "too few values", values: []float64{5}, want: ErrTooFewDistances},
		{name: "duplicates collapse below minimum", values: []float64{5, 5, 5}, want: ErrTooFewDistances},
		{name: "empty input", values: nil, want: ErrTooFewDistances},
		{name: "zero distance", values: []float64{0, 5}, want: ErrNonPositiveDistance},
		{name: "negative distance", values: []float64{-1, 5}, want: ErrNonPositiveDistance},
		{name: "above maximum", values: []float64{5, 31}, want: ErrDistanceTooLarge},
		{name: "NaN distance", values: []float64{math.NaN(), 5}, want: ErrNonPositiveDistance},
		{name: "positive infinity", values: []float64{5, math.Inf(1)}, want: ErrDistanceTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDistanceSet(tt.values)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseDistanceSet_RejectsNaNToken(t *testing.T) {
	// strconv.ParseFloat accepts "NaN", so the range check has to catch it.
	_, err := ParseDistanceSet("NaN, 5")
	require.ErrorIs(t, err, ErrNonPositiveDistance)
}

func TestNewDistanceSet_BoundaryValueAccepted(t *testing.T) {
	set, err := NewDistanceSet([]float64{MaxDistanceMM, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, MaxDistanceMM}, set.Values())
}

func TestDistanceSet_ValuesIsACopy(t *testing.T) {
	set, err := NewDistanceSet([]float64{2, 4})
	require.NoError(t, err)

	values := set.Values()
	values[0] = 99
	assert.Equal(t, []float64{2, 4}, set.Values())
}
