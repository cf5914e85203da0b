package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Spreadsheet serial dates count days from 1899-12-30, which is 25569 days
// before the Unix epoch.
const serialEpochOffsetDays = 25569

// PlaceholderValue fills descriptive fields whose cells are blank.
const PlaceholderValue = "-"

// Accepted textual date layouts, tried in order.
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"02-01-2006",
	"2/1/2006",
	time.RFC3339,
}

// NormalizeDate converts a raw spreadsheet cell into a start-of-day date.
// It accepts native dates, numeric day serials (as number or numeric string)
// and textual dates; anything else resolves to absent (nil), never an error.
func NormalizeDate(raw any) *time.Time {
	switch v := raw.(type) {
	case nil:
		return nil
	case time.Time:
		if v.IsZero() {
			return nil
		}
		d := StartOfDay(v)
		return &d
	case float64:
		return serialToDate(v)
	case int:
		return serialToDate(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return serialToDate(serial)
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				d := StartOfDay(t)
				return &d
			}
		}
		return nil
	default:
		return nil
	}
}

// NormalizeRequiredDate applies the lenient-degradation policy for required
// date fields: an absent or unparseable cell falls back to today instead of
// failing the row.
func NormalizeRequiredDate(raw any, today time.Time) time.Time {
	if d := NormalizeDate(raw); d != nil {
		return *d
	}
	return StartOfDay(today)
}

// NormalizeString flattens a raw cell to a trimmed string, or the "-"
// placeholder when blank.
func NormalizeString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return PlaceholderValue
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return PlaceholderValue
		}
		return s
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		s := strings.TrimSpace(fmt.Sprintf("%v", v))
		if s == "" {
			return PlaceholderValue
		}
		return s
	}
}

// NormalizeVolume parses a quantity cell into a decimal; zero when absent or
// not numeric. The raw display value is kept separately via NormalizeString.
func NormalizeVolume(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		if s == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// StartOfDay truncates a timestamp to midnight UTC of its date components.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed calendar-day distance from `from` to `to`,
// ignoring time-of-day on both sides.
func DaysBetween(from, to time.Time) int {
	return int(StartOfDay(to).Sub(StartOfDay(from)).Hours() / 24)
}

func serialToDate(serial float64) *time.Time {
	if serial <= 0 {
		return nil
	}
	secs := (serial - serialEpochOffsetDays) * 86400
	d := StartOfDay(time.Unix(int64(secs), 0).UTC())
	return &d
}
