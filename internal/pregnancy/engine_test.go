package pregnancy

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeKnownPregnancy(t *testing.T) {
	lmp := date(2024, time.January, 1)
	now := date(2024, time.April, 1) // 91 days later

	result := Compute(lmp, now)

	if got, want := result.DueDate, date(2024, time.October, 7); !got.Equal(want) {
		t.Errorf("due date = %v, want %v", got, want)
	}
	if got, want := result.ConceptionDate, date(2024, time.January, 15); !got.Equal(want) {
		t.Errorf("conception date = %v, want %v", got, want)
	}
	if result.CurrentWeek != 13 {
		t.Errorf("current week = %d, want 13", result.CurrentWeek)
	}
	if result.CurrentDay != 0 {
		t.Errorf("current day = %d, want 0", result.CurrentDay)
	}
	if result.Trimester != 2 {
		t.Errorf("trimester = %d, want 2", result.Trimester)
	}
}

func TestComputeDueDateIndependentOfNow(t *testing.T) {
	lmp := date(2024, time.March, 10)
	want := date(2024, time.December, 15) // LMP + 280 days

	evaluations := []time.Time{
		date(2024, time.March, 11),
		date(2024, time.June, 1),
		date(2024, time.December, 20),
	}

	for _, now := range evaluations {
		result := Compute(lmp, now)
		if !result.DueDate.Equal(want) {
			t.Errorf("at %v: due date = %v, want %v", now, result.DueDate, want)
		}
		if got := lmp.AddDate(0, 0, 14); !result.ConceptionDate.Equal(got) {
			t.Errorf("at %v: conception date = %v, want %v", now, result.ConceptionDate, got)
		}
	}
}

func TestComputeWeekDayDecomposition(t *testing.T) {
	lmp := date(2024, time.January, 1)

	for elapsed := 0; elapsed <= 300; elapsed += 13 {
		now := lmp.AddDate(0, 0, elapsed)
		result := Compute(lmp, now)
		if result.CurrentWeek*7+result.CurrentDay != elapsed {
			t.Errorf("elapsed %d: week=%d day=%d does not recompose", elapsed, result.CurrentWeek, result.CurrentDay)
		}
	}
}

func TestComputeTrimesterBoundaries(t *testing.T) {
	tests := []struct {
		week      int
		trimester int
	}{
		{0, 1},
		{12, 1},
		{13, 2},
		{27, 2},
		{28, 3},
		{40, 3},
	}

	lmp := date(2024, time.January, 1)
	for _, tt := range tests {
		now := lmp.AddDate(0, 0, tt.week*7)
		result := Compute(lmp, now)
		if result.CurrentWeek != tt.week {
			t.Fatalf("setup: current week = %d, want %d", result.CurrentWeek, tt.week)
		}
		if result.Trimester != tt.trimester {
			t.Errorf("week %d: trimester = %d, want %d", tt.week, result.Trimester, tt.trimester)
		}
	}
}

func TestComputePostTerm(t *testing.T) {
	lmp := date(2024, time.January, 1)
	now := lmp.AddDate(0, 0, 42*7) // two weeks past due

	result := Compute(lmp, now)

	if result.CurrentWeek != 42 {
		t.Errorf("current week = %d, want 42 (no clamping)", result.CurrentWeek)
	}
	if result.DaysUntilDue != -14 {
		t.Errorf("days until due = %d, want -14 (signed)", result.DaysUntilDue)
	}
	if result.BabySize.Week != 40 {
		t.Errorf("size entry week = %d, want 40 (last table row)", result.BabySize.Week)
	}
}

func TestIsValidPregnancyDate(t *testing.T) {
	now := date(2024, time.June, 1)

	tests := []struct {
		name string
		lmp  time.Time
		want bool
	}{
		{"zero date", time.Time{}, false},
		{"future date", now.AddDate(0, 0, 1), false},
		{"today", now, true},
		{"294 days ago", now.AddDate(0, 0, -294), true},
		{"295 days ago", now.AddDate(0, 0, -295), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPregnancyDate(tt.lmp, now); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookupBabySize(t *testing.T) {
	tests := []struct {
		week        int
		wantLength  int
		wantDesc    string
		wantTabWeek int
	}{
		{3, 2, "poppy seed", 4},   // below floor clamps to first row
		{4, 2, "poppy seed", 4},
		{20, 166, "banana", 20},
		{40, 516, "small pumpkin", 40},
		{43, 516, "small pumpkin", 40}, // post-term stays at last row
	}

	for _, tt := range tests {
		entry := LookupBabySize(tt.week)
		if entry.LengthMm != tt.wantLength || entry.Description != tt.wantDesc || entry.Week != tt.wantTabWeek {
			t.Errorf("week %d: got (%d, %d, %q), want (%d, %d, %q)",
				tt.week, entry.Week, entry.LengthMm, entry.Description,
				tt.wantTabWeek, tt.wantLength, tt.wantDesc)
		}
	}
}

func TestSizeTableShape(t *testing.T) {
	if len(sizeTable) != 37 {
		t.Fatalf("table has %d rows, want 37", len(sizeTable))
	}
	for i := 1; i < len(sizeTable); i++ {
		if sizeTable[i].Week <= sizeTable[i-1].Week {
			t.Errorf("row %d: week %d not ascending after %d", i, sizeTable[i].Week, sizeTable[i-1].Week)
		}
		if sizeTable[i].LengthMm < sizeTable[i-1].LengthMm {
			t.Errorf("row %d: length %d shrinks after %d", i, sizeTable[i].LengthMm, sizeTable[i-1].LengthMm)
		}
	}
}

func TestFormatWeek(t *testing.T) {
	tests := []struct {
		weeks, days int
		want        string
	}{
		{0, 0, "0 days"},
		{0, 1, "1 day"},
		{0, 3, "3 days"},
		{1, 0, "1 week"},
		{5, 0, "5 weeks"},
		{1, 1, "1 week, 1 day"},
		{5, 1, "5 weeks, 1 day"},
		{5, 4, "5 weeks, 4 days"},
	}

	for _, tt := range tests {
		if got := FormatWeek(tt.weeks, tt.days); got != tt.want {
			t.Errorf("FormatWeek(%d, %d) = %q, want %q", tt.weeks, tt.days, got, tt.want)
		}
	}
}
