package invoice

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTabularEnglishHeader(t *testing.T) {
	in := "Description\tQuantity\tPrice\n" +
		"Skate rental\t2\t7.50\n" +
		"Lesson\t1\t25.00\n"

	inputs, err := ParseTabular(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseTabular: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("got %d rows, want 2", len(inputs))
	}
	if inputs[0].Description != "Skate rental" || inputs[0].Quantity != "2" || inputs[0].Price != "7.50" {
		t.Fatalf("row 0 = %+v", inputs[0])
	}
}

func TestParseTabularDutchHeaderReordered(t *testing.T) {
	in := "Aantal\tOmschrijving\tPrijs\n" +
		"2\tSchaatshuur\t7.50\n"

	inputs, err := ParseTabular(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseTabular: %v", err)
	}
	if len(inputs) != 1 {
		t.Fatalf("got %d rows, want 1", len(inputs))
	}
	if inputs[0].Description != "Schaatshuur" || inputs[0].Quantity != "2" || inputs[0].Price != "7.50" {
		t.Fatalf("columns mapped wrong: %+v", inputs[0])
	}
}

func TestParseTabularHeaderlessFallsBackToPositions(t *testing.T) {
	in := "Skate rental\t2\t7.50\n"

	inputs, err := ParseTabular(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseTabular: %v", err)
	}
	if len(inputs) != 1 || inputs[0].Description != "Skate rental" {
		t.Fatalf("positional parse failed: %+v", inputs)
	}
}

func TestParseTabularPartialHeaderIsRejected(t *testing.T) {
	// Names description and quantity but not price: ambiguous, no guessing.
	in := "Description\tQuantity\tCost\n" +
		"Skate rental\t2\t7.50\n"

	_, err := ParseTabular(strings.NewReader(in))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ParseTabular = %v, want ValidationError", err)
	}
}

func TestParseTabularBadRow(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"non-numeric quantity", "Description\tQuantity\tPrice\nx\ttwo\t7.50\n"},
		{"too few columns", "Skate rental\t2\n"},
		{"empty input", ""},
		{"header only", "Description\tQuantity\tPrice\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTabular(strings.NewReader(tc.in))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ParseTabular = %v, want ValidationError", err)
			}
		})
	}
}
