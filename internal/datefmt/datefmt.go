// Package datefmt renders show timestamps for display. The two layouts
// mirror the listing site's locale formats: "full" is used on detail
// pages, "medium" everywhere else.
package datefmt

import "time"

const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// Format returns the timestamp in the requested mode. Unknown modes fall
// back to medium.
func Format(t time.Time, mode string) string {
	switch mode {
	case "full":
		return t.Format(fullLayout)
	default:
		return t.Format(mediumLayout)
	}
}
