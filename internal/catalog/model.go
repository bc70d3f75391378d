package catalog

import "time"

// ClassType is the duration category of an offering.
type ClassType string

const (
	ClassHalf ClassType = "half" // 25-minute session
	ClassFull ClassType = "full" // 55-minute session
)

// Duration returns the session length for the class type. Anything that is
// not explicitly a full class counts as a half class, including unknown or
// missing values coming from stale booking data.
func (c ClassType) Duration() time.Duration {
	if c == ClassFull {
		return 55 * time.Minute
	}
	return 25 * time.Minute
}

// Offering is one bookable catalog entry. Offerings are read-only reference
// data loaded once from the static catalog.
type Offering struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	ClassType   ClassType `json:"class_type"`
}

// Duration returns the offering's session length.
func (o Offering) Duration() time.Duration {
	return o.ClassType.Duration()
}
