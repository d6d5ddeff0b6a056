package events

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var referenceMonthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsReferenceMonth reports whether value is a YYYY-MM month key.
func IsReferenceMonth(value string) bool {
	return referenceMonthRegex.MatchString(value)
}

func isValidTerm(term int) bool {
	return term == 12 || term == 24 || term == 36
}

// monthSequence expands startMonth into term contiguous YYYY-MM keys,
// rolling over the year as needed.
func monthSequence(startMonth string, term int) []string {
	parts := strings.SplitN(startMonth, "-", 2)
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])

	months := make([]string, 0, term)
	for i := 0; i < term; i++ {
		total := (month - 1) + i
		y := year + total/12
		m := total%12 + 1
		months = append(months, fmt.Sprintf("%04d-%02d", y, m))
	}
	return months
}
