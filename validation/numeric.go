package validation

import (
	"strconv"
	"strings"
)

// parseStrict parses a numeric cell value without any cleanup.
func parseStrict(value string) (float64, bool) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// numericCleaner removes formatting noise commonly found in exported
// payroll cells: thousands separators, whitespace, underscores and
// currency markers. Format stripping only - the digits themselves are
// never guessed or reordered.
var numericCleaner = strings.NewReplacer(
	",", "",
	" ", "",
	" ", "", // non-breaking space from spreadsheet exports
	"_", "",
	"₫", "",
	"đ", "",
	"Đ", "",
	"VND", "",
	"vnd", "",
)

// cleanNumeric strips formatting noise and retries the strict parse.
// Returns the cleaned string alongside the value so the auto-fix report
// can show exactly what was parsed.
func cleanNumeric(value string) (float64, string, bool) {
	cleaned := strings.TrimSpace(numericCleaner.Replace(value))
	if cleaned == "" {
		return 0, cleaned, false
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, cleaned, false
	}
	return f, cleaned, true
}
