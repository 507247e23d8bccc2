package internal

import (
	"regexp"
	"strings"
	"time"

	"storeops/internal/domain"
	"storeops/internal/util"
)

// ClosedDateSet holds the calendar dates (YYYY-MM-DD keys) forced to
// zero in the target month. Recomputed on every run, never persisted.
type ClosedDateSet map[string]bool

func (c ClosedDateSet) Contains(t time.Time) bool {
	return c[util.FormatDate(t)]
}

var closedDateToken = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseClosedDatesText extracts dates from the admin free-text input.
// Tokens are split on commas, whitespace and newlines; anything that
// is not a parseable YYYY-MM-DD date is silently dropped.
func ParseClosedDatesText(text string) ClosedDateSet {
	out := ClosedDateSet{}
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	for _, token := range tokens {
		if !closedDateToken.MatchString(token) {
			continue
		}
		if _, err := util.ParseDate(token); err != nil {
			continue
		}
		out[token] = true
	}
	return out
}

// InferClosedDates unions the explicit admin dates with closures
// inferred from last year: any day-of-month whose summed transactions
// a year prior were exactly zero is assumed closed this year too.
// With no last-year rows at all, nothing is inferred.
func InferClosedDates(
	monthStart time.Time,
	lastYearRows []domain.StoreDay,
	adminText string,
) ClosedDateSet {
	closed := ParseClosedDatesText(adminText)
	if len(lastYearRows) == 0 {
		return closed
	}

	daysInMonth := util.DaysInMonth(monthStart)
	txnsByDay := make([]int64, daysInMonth)
	for _, row := range lastYearRows {
		day := row.Date.Day()
		if day < 1 || day > daysInMonth {
			continue
		}
		txnsByDay[day-1] += int64(row.Transactions)
	}

	// a day with no row at all last year also sums to zero and is
	// treated as closed
	for i := 0; i < daysInMonth; i++ {
		if txnsByDay[i] == 0 {
			date := monthStart.AddDate(0, 0, i)
			closed[util.FormatDate(date)] = true
		}
	}

	return closed
}
