package showcase

import (
	"fmt"
	"time"

	"github.com/goodsign/monday"
)

type DateStyle string

const (
	// DateStyleFull renders as "Tuesday May, 21, 2019 at 9:30PM".
	DateStyleFull DateStyle = "full"
	// DateStyleMedium renders as "Tue 05, 21, 2019 9:30PM".
	DateStyleMedium DateStyle = "medium"
)

var dateLayouts = map[DateStyle]string{
	DateStyleFull:   "Monday January, 2, 2006 at 3:04PM",
	DateStyleMedium: "Mon 01, 02, 2006 3:04PM",
}

func ParseDateStyle(s string) (DateStyle, error) {
	style := DateStyle(s)
	if _, ok := dateLayouts[style]; !ok {
		return "", fmt.Errorf("unknown datetime style %q, expected %q or %q", s, DateStyleFull, DateStyleMedium)
	}
	return style, nil
}

func ParseLocale(s string) (monday.Locale, error) {
	for _, l := range monday.ListLocales() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported locale %q", s)
}

// FormatDateTime renders t with the layout of style, translating weekday and
// month names to locale. An unknown style falls back to medium.
func FormatDateTime(t time.Time, style DateStyle, locale monday.Locale) string {
	layout, ok := dateLayouts[style]
	if !ok {
		layout = dateLayouts[DateStyleMedium]
	}
	return monday.Format(t, layout, locale)
}
