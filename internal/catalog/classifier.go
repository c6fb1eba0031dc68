package catalog

import "strings"

// Other is the sentinel category for names no keyword matches.
const Other = "other"

// Classify maps an application name to a category by keyword containment.
// Matching is case-insensitive against the lower-cased name; the first
// category in table order with a matching keyword wins. Pure function.
func (c Catalog) Classify(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range c.Categories {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry.Category
			}
		}
	}
	return Other
}
