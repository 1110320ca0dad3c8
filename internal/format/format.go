// Package format turns API values into display strings.
package format

import (
	"fmt"
	"html"
	"math"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"TOURBOOK_WEB/internal/models"
)

const (
	shortDate = "Jan 2, 2006"
	longDate  = "Monday, January 2, 2006"
	dateTime  = "Jan 2, 2006, 3:04 PM"
)

// strict strips all markup from guide-authored text.
var strict = bluemonday.StrictPolicy()

var usd = message.NewPrinter(language.English)

func layout(value string, loc *time.Location, l string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	t, err := models.ParseDate(value)
	if err != nil {
		return value
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(l)
}

// Date renders an ISO 8601 string as "Oct 16, 2026". Unparsable input is
// returned unchanged.
func Date(value string, loc *time.Location) string { return layout(value, loc, shortDate) }

// LongDate renders an ISO 8601 string as "Friday, October 16, 2026".
func LongDate(value string, loc *time.Location) string { return layout(value, loc, longDate) }

// DateTime renders an ISO 8601 string as "Oct 16, 2026, 3:04 PM".
func DateTime(value string, loc *time.Location) string { return layout(value, loc, dateTime) }

// RelativeDay labels t relative to now by calendar day: "Today", "Tomorrow",
// "Yesterday", "In 3 days", "2 days ago".
func RelativeDay(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	ty, tm, td := t.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	days := int(math.Round(a.Sub(b).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 1:
		return fmt.Sprintf("In %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// Price renders an amount in US dollars with thousands separators: "$1,250.00".
// Amounts that round to zero cents render without a sign.
func Price(amount float64) string {
	cents := math.Round(amount * 100)
	if cents == 0 {
		return "$0.00"
	}
	sign := ""
	if cents < 0 {
		sign = "-"
	}
	return sign + "$" + usd.Sprintf("%.2f", math.Abs(cents)/100)
}

// Duration renders a tour length in hours.
func Duration(hours int) string {
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}

// GroupSize renders a head count: "1 guest", "4 guests".
func GroupSize(n int) string {
	if n == 1 {
		return "1 guest"
	}
	return fmt.Sprintf("%d guests", n)
}

// Initials returns up to two upper-case initials for an avatar placeholder.
func Initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		out = append(out, []rune(strings.ToUpper(string(r[0])))...)
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// SanitizeText strips markup from guide-authored text (descriptions,
// itineraries) and trims surrounding whitespace. The result is plain text,
// so entities escaped by the policy are decoded again.
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// StatusLabel renders a booking status for display: "CONFIRMED" -> "Confirmed".
func StatusLabel(s models.BookingStatus) string {
	v := strings.ToLower(string(s))
	if v == "" {
		return ""
	}
	return strings.ToUpper(v[:1]) + v[1:]
}
