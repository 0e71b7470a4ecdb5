package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// TimestampResult holds the parsed timestamp and any error.
type TimestampResult struct {
	Time  time.Time
	Error error
}

// periodRegex matches period expressions like "this week", "last month".
var periodRegex = regexp.MustCompile(`(?i)^(this|current|last|previous)\s+(hour|day|week|month|quarter|year)$`)

// ParseTimestamp parses a natural language timestamp expression relative to now.
func ParseTimestamp(input string) TimestampResult {
	return ParseTimestampAt(input, time.Now())
}

// ParseTimestampAt parses input relative to the given current time.
// Period expressions such as "this week" resolve to the start of the period.
func ParseTimestampAt(input string, now time.Time) TimestampResult {
	input = strings.TrimSpace(input)
	if input == "" || strings.ToLower(input) == "now" {
		return TimestampResult{Time: now}
	}

	// Check for period expressions first
	if match := periodRegex.FindStringSubmatch(input); match != nil {
		return parsePeriod(now, match[1], match[2])
	}

	// Use go-dateparser for natural language parsing
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return TimestampResult{Error: NewTimestampError(input)}
	}

	return TimestampResult{Time: result.Time}
}

// parsePeriod handles period expressions like "this week", "last month".
func parsePeriod(now time.Time, modifier, period string) TimestampResult {
	modifier = strings.ToLower(modifier)
	period = strings.ToLower(period)

	var t time.Time

	switch period {
	case "hour":
		t = time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
		if modifier == "last" || modifier == "previous" {
			t = t.Add(-time.Hour)
		}

	case "day":
		t = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if modifier == "last" || modifier == "previous" {
			t = t.AddDate(0, 0, -1)
		}

	case "week":
		// Go to start of week (Monday)
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday
		}
		t = time.Date(now.Year(), now.Month(), now.Day()-weekday+1, 0, 0, 0, 0, now.Location())
		if modifier == "last" || modifier == "previous" {
			t = t.AddDate(0, 0, -7)
		}

	case "month":
		t = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if modifier == "last" || modifier == "previous" {
			t = t.AddDate(0, -1, 0)
		}

	case "quarter":
		quarter := (int(now.Month()) - 1) / 3
		t = time.Date(now.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, now.Location())
		if modifier == "last" || modifier == "previous" {
			t = t.AddDate(0, -3, 0)
		}

	case "year":
		t = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		if modifier == "last" || modifier == "previous" {
			t = t.AddDate(-1, 0, 0)
		}

	default:
		return TimestampResult{Time: now}
	}

	return TimestampResult{Time: t}
}
