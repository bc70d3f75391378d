package catalog

import (
	"fmt"
	"strings"
)

// AllFilter matches every value of a filter dimension.
const AllFilter = "All"

// Query describes one filter pass over the catalog. Zero values ("" or
// "All") leave the corresponding dimension unconstrained.
type Query struct {
	Category  string
	ClassType string
	Search    string
}

// Lookup returns the offering with the given id, or false when the id is
// dangling. Callers must treat a miss as "default duration", never an error.
func Lookup(id string) (Offering, bool) {
	for _, o := range Offerings {
		if o.ID == id {
			return o, true
		}
	}
	return Offering{}, false
}

// DurationFor resolves the session duration for an offering id, falling back
// to the half-class duration when the id does not resolve.
func DurationFor(id string) ClassType {
	if o, ok := Lookup(id); ok {
		return o.ClassType
	}
	return ClassHalf
}

// Categories returns the distinct categories in first-seen declaration order.
func Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, o := range Offerings {
		if _, ok := seen[o.Category]; ok {
			continue
		}
		seen[o.Category] = struct{}{}
		out = append(out, o.Category)
	}
	return out
}

// Filter applies q to offerings and returns matches in their stored order.
// The three predicates are independent: category, class type, and a
// case-insensitive substring search over title and description.
func Filter(offerings []Offering, q Query) []Offering {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]Offering, 0, len(offerings))
	for _, o := range offerings {
		if !matchesDimension(q.Category, o.Category) {
			continue
		}
		if !matchesDimension(q.ClassType, string(o.ClassType)) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(o.Title), search) &&
			!strings.Contains(strings.ToLower(o.Description), search) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesDimension(want, have string) bool {
	return want == "" || want == AllFilter || want == have
}

// MenuContext renders the catalog as the plain-text menu handed to the
// concierge prompt, one offering per line.
func MenuContext(offerings []Offering) string {
	var b strings.Builder
	for _, o := range offerings {
		fmt.Fprintf(&b, "- %s (%s): %s\n", o.Title, o.Category, o.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
