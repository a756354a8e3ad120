package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaxDistanceMM bounds the tip separations a printable wheel can carry.
const MaxDistanceMM = 30.0

// MinDistinctDistances is the smallest useful wheel. A single station cannot
// discriminate anything.
const MinDistinctDistances = 2

var (
	ErrTooFewDistances     = errors.New("provide at least two distinct distances")
	ErrNonPositiveDistance = errors.New("every distance must be >0 mm")
	// ErrDistanceTooLarge is surfaced verbatim to form users, hence the casing.
	ErrDistanceTooLarge = errors.New("Max allowed distance is 30mm")
)

// ParseError reports a token that could not be read as a number.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a number", e.Token)
}

// ParseDistances splits a comma-separated string into millimeter values.
// Whitespace around tokens is ignored and empty tokens are dropped.
func ParseDistances(raw string) ([]float64, error) {
	var values []float64
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, &ParseError{Token: token}
		}
		values = append(values, v)
	}
	return values, nil
}

// DistanceSet holds the deduplicated, ascending tip separations of one wheel.
type DistanceSet struct {
	values []float64
}

// NewDistanceSet validates raw measurements and normalizes them: duplicates
// are dropped and the remainder sorted ascending.
func NewDistanceSet(values []float64) (DistanceSet, error) {
	seen := make(map[float64]struct{}, len(values))
	distinct := make([]float64, 0, len(values))
	for _, v := range values {
		// Written as a negated comparison so NaN fails it too.
		if !(v > 0) {
			return DistanceSet{}, ErrNonPositiveDistance
		}
		if v > MaxDistanceMM {
			return DistanceSet{}, ErrDistanceTooLarge
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	if len(distinct) < MinDistinctDistances {
		return DistanceSet{}, ErrTooFewDistances
	}
	sort.Float64s(distinct)
	return DistanceSet{values: distinct}, nil
}

// ParseDistanceSet parses and validates a comma-separated form payload.
func ParseDistanceSet(raw string) (DistanceSet, error) {
	values, err := ParseDistances(raw)
	if err != nil {
		return DistanceSet{}, err
	}
	return NewDistanceSet(values)
}

// Values returns a defensive copy of the normalized separations.
func (s DistanceSet) Values() []float64 {
	return append([]float64{}, s.values...)
}

// Len reports the number of distinct separations.
func (s DistanceSet) Len() int {
	return len(s.values)
}

// Max returns the widest separation, or zero for an empty set.
func (s DistanceSet) Max() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}
