package aamva

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameCase(t *testing.T) {
	testCases := []struct {
		raw    string
		expect string
	}{
		{"JOHNSON", "Johnson"},
		{"MCDONALD", "McDonald"},
		{"MCKENZIE", "McKenzie"},
		{"O'BRIEN", "O'Brien"},
		{"SMITH-JONES", "Smith-Jones"},
		{"MARY ANN", "Mary Ann"},
		{"DE LA CRUZ", "De La Cruz"},
		{"D'ARCY-MCGEE", "D'Arcy-McGee"},
		{"123 MAIN ST", "123 Main St"},
		{"SAN FRANCISCO", "San Francisco"},
		{"MC", "Mc"},
		{"", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.expect, nameCase(tc.raw))
			// idempotent - re-casing an already-cased name is a no-op
			assert.Equal(t, tc.expect, nameCase(tc.expect))
		})
	}
}

func TestSplitFullName(t *testing.T) {
	t.Run("ThreeSegments", func(t *testing.T) {
		last, first, middle := splitFullName("JOHNSON,JOHN,MICHAEL")
		assert.Equal(t, "Johnson", last)
		assert.Equal(t, "John", first)
		assert.Equal(t, "Michael", middle)
	})

	t.Run("NoMiddle", func(t *testing.T) {
		last, first, middle := splitFullName("DOE,JANE")
		assert.Equal(t, "Doe", last)
		assert.Equal(t, "Jane", first)
		assert.Equal(t, "", middle)
	})

	t.Run("LastOnly", func(t *testing.T) {
		last, first, middle := splitFullName("MADONNA")
		assert.Equal(t, "Madonna", last)
		assert.Equal(t, "", first)
		assert.Equal(t, "", middle)
	})

	t.Run("SegmentsTrimmed", func(t *testing.T) {
		last, first, middle := splitFullName(" O'BRIEN , MARY ANN , K ")
		assert.Equal(t, "O'Brien", last)
		assert.Equal(t, "Mary Ann", first)
		assert.Equal(t, "K", middle)
	})

	t.Run("ExtraSegmentsIgnored", func(t *testing.T) {
		last, first, middle := splitFullName("A,B,C,D")
		assert.Equal(t, "A", last)
		assert.Equal(t, "B", first)
		assert.Equal(t, "C", middle)
	})
}
