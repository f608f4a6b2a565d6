package domain

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                   string
		aIn, aOut, bIn, bOut   int
		want                   bool
	}{
		{"identical", 1, 5, 1, 5, true},
		{"contained", 1, 10, 3, 5, true},
		{"partial overlap", 1, 5, 4, 6, true},
		{"single shared night", 1, 5, 4, 5, true},
		{"back-to-back turnover", 1, 5, 5, 7, false},
		{"back-to-back reversed", 5, 7, 1, 5, false},
		{"disjoint", 1, 3, 10, 12, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(day(tc.aIn), day(tc.aOut), day(tc.bIn), day(tc.bOut)); got != tc.want {
				t.Fatalf("Overlaps: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverlaps_Symmetry(t *testing.T) {
	// hasConflict(A,B) == hasConflict(B,A) for all interval pairs.
	for aIn := 1; aIn < 6; aIn++ {
		for aOut := aIn + 1; aOut < 7; aOut++ {
			for bIn := 1; bIn < 6; bIn++ {
				for bOut := bIn + 1; bOut < 7; bOut++ {
					ab := Overlaps(day(aIn), day(aOut), day(bIn), day(bOut))
					ba := Overlaps(day(bIn), day(bOut), day(aIn), day(aOut))
					if ab != ba {
						t.Fatalf("asymmetric for [%d,%d) vs [%d,%d): %v != %v", aIn, aOut, bIn, bOut, ab, ba)
					}
				}
			}
		}
	}
}

func TestBooking_Covers(t *testing.T) {
	b := &Booking{CheckIn: day(2), CheckOut: day(5)}

	if !b.Covers(day(2)) {
		t.Fatalf("check-in day must be covered")
	}
	if !b.Covers(day(4)) {
		t.Fatalf("middle day must be covered")
	}
	if b.Covers(day(5)) {
		t.Fatalf("checkout day must not be covered (half-open interval)")
	}
	if b.Covers(day(1)) {
		t.Fatalf("day before check-in must not be covered")
	}
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 15, 42, 13, 500, time.FixedZone("MSK", 3*3600))
	got := DateOnly(ts)
	want := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateOnly: got %v, want %v", got, want)
	}
}
