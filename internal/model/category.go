package model

import "strings"

// Category is one of the seven fare categories tracked by the tool.
// Categories never interact with each other.
type Category string

const (
	CategorySuburbanSeason     Category = "suburban-season"
	CategorySuburbanJourney    Category = "suburban-journey"
	CategoryNonSuburbanSeason  Category = "non-suburban-season"
	CategoryNonSuburbanJourney Category = "non-suburban-journey"
	CategoryATVM               Category = "atvm"
	CategoryUTS                Category = "uts"
	CategoryMobile             Category = "mobile"
)

// Categories lists all fare categories in display and export order.
var Categories = []Category{
	CategorySuburbanSeason,
	CategorySuburbanJourney,
	CategoryNonSuburbanSeason,
	CategoryNonSuburbanJourney,
	CategoryATVM,
	CategoryUTS,
	CategoryMobile,
}

// anchorLabels maps each category to the row label that marks its section in
// the baseline file.
var anchorLabels = map[Category]string{
	CategorySuburbanSeason:     "SUBURBAN SEASON TICKETS",
	CategorySuburbanJourney:    "SUBURBAN JOURNEY TICKETS",
	CategoryNonSuburbanSeason:  "NON-SUBURBAN SEASON TICKETS",
	CategoryNonSuburbanJourney: "NON-SUBURBAN JOURNEY TICKETS",
	CategoryATVM:               "ATVM TICKETS",
	CategoryUTS:                "UTS TICKETS",
	CategoryMobile:             "MOBILE TICKETS",
}

// ParseCategory returns the category for an identifier string.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.TrimSpace(s))
	_, ok := anchorLabels[c]
	return c, ok
}

// AnchorLabel returns the section label for the category in the baseline file.
func (c Category) AnchorLabel() string {
	return anchorLabels[c]
}

// Title returns the human-readable name: hyphens become spaces and every word
// is capitalized. "suburban-season" -> "Suburban Season".
func (c Category) Title() string {
	return TitleFromName(string(c))
}

// TitleFromName turns a hyphenated identifier into a display title.
func TitleFromName(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
