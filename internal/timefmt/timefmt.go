// Package timefmt renders nullable timestamps for display in a fixed
// location. Formatting is a presentation concern; the workflows only
// ever pass times through.
package timefmt

import "time"

const displayLayout = "2006-01-02 15:04"

// Formatter localizes timestamps into one location.
type Formatter struct {
	loc *time.Location
}

// New creates a formatter for the named IANA location.
func New(name string) (*Formatter, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return &Formatter{loc: loc}, nil
}

// InLocation creates a formatter for an already-loaded location.
func InLocation(loc *time.Location) *Formatter {
	return &Formatter{loc: loc}
}

// Display renders the timestamp in the formatter's location, or the
// empty string for nil.
func (f *Formatter) Display(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(f.loc).Format(displayLayout)
}
