package portal

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Stringable struct {
	value string
}

func MakeStringable(value string) *Stringable {
	return &Stringable{
		value: strings.TrimSpace(value),
	}
}

func (s Stringable) ToLower() string {
	caser := cases.Lower(language.English)

	return strings.TrimSpace(caser.String(s.value))
}

func (s Stringable) IsEmpty() bool {
	return s.value == ""
}

// ToDate parses the value as a plain calendar date (2006-01-02) in UTC.
func (s Stringable) ToDate() (*time.Time, error) {
	parsed, err := time.ParseInLocation(time.DateOnly, s.value, time.UTC)

	if err != nil {
		return nil, fmt.Errorf("error parsing date string: %v", err)
	}

	return &parsed, nil
}
