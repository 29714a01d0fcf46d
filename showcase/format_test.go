package showcase

import (
	"testing"
	"time"

	"github.com/goodsign/monday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateTime(t *testing.T) {
	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		style    DateStyle
		expected string
	}{
		{name: "full", style: DateStyleFull, expected: "Tuesday May, 21, 2019 at 9:30PM"},
		{name: "medium", style: DateStyleMedium, expected: "Tue 05, 21, 2019 9:30PM"},
		{name: "unknown_falls_back_to_medium", style: DateStyle("short"), expected: "Tue 05, 21, 2019 9:30PM"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatDateTime(start, tc.style, monday.LocaleEnUS))
		})
	}
}

func TestFormatDateTime_morning(t *testing.T) {
	start := time.Date(2035, 4, 1, 9, 5, 0, 0, time.UTC)

	assert.Equal(t, "Sun 04, 01, 2035 9:05AM", FormatDateTime(start, DateStyleMedium, monday.LocaleEnUS))
}

func TestFormatDateTime_locale(t *testing.T) {
	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	english := FormatDateTime(start, DateStyleFull, monday.LocaleEnUS)
	french := FormatDateTime(start, DateStyleFull, monday.LocaleFrFR)

	assert.NotEqual(t, english, french)
	assert.Contains(t, french, "mai")
	assert.Contains(t, french, "2019")
}

func TestFormatDateTime_is_pure(t *testing.T) {
	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	first := FormatDateTime(start, DateStyleFull, monday.LocaleFrFR)
	_ = FormatDateTime(start, DateStyleFull, monday.LocaleEnUS)

	assert.Equal(t, first, FormatDateTime(start, DateStyleFull, monday.LocaleFrFR))
}

func TestParseDateStyle(t *testing.T) {
	style, err := ParseDateStyle("full")
	require.NoError(t, err)
	assert.Equal(t, DateStyleFull, style)

	_, err = ParseDateStyle("long")
	assert.Error(t, err)
}

func TestParseLocale(t *testing.T) {
	locale, err := ParseLocale("en_US")
	require.NoError(t, err)
	assert.Equal(t, monday.Locale(monday.LocaleEnUS), locale)

	_, err = ParseLocale("xx_XX")
	assert.Error(t, err)
}
