package filter

import "fmt"

// Summary is the status line of a list view.
type Summary struct {
	IsActive bool
	Label    string
}

// Summarize projects criteria and counts into the status line
// "Showing {showing} of {total} {itemType}".
func Summarize(schema *Schema, c Criteria, total, showing int) Summary {
	return Summary{
		IsActive: schema.IsActive(c),
		Label:    fmt.Sprintf("Showing %d of %d %s", showing, total, schema.itemType),
	}
}
