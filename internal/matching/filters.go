package matching

import (
	"strconv"
	"strings"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

// Any is the filter value that disables a criterion.
const Any = "Any"

// Filters holds the raw filter values as received from a client.
type Filters struct {
	AgeRange      string
	City          string
	Religion      string
	Occupation    string
	Compatibility string
	Search        string
}

// AgeRange is an inclusive age bound.
type AgeRange struct {
	Min int
	Max int
}

func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// Criteria is the parsed form of Filters. A nil or empty field is inactive.
type Criteria struct {
	Age              *AgeRange
	City             string
	Religion         string
	Occupation       string // lower-cased
	MinCompatibility *int
	Name             string // lower-cased
}

// ParseFilters turns raw filter strings into Criteria. Values that do not
// follow the grammar are treated as Any instead of failing the request.
func ParseFilters(f Filters) Criteria {
	var c Criteria
	if v, ok := active(f.AgeRange); ok {
		c.Age = parseAgeRange(v)
	}
	if v, ok := active(f.City); ok {
		c.City = v
	}
	if v, ok := active(f.Religion); ok {
		c.Religion = v
	}
	if v, ok := active(f.Occupation); ok {
		c.Occupation = strings.ToLower(v)
	}
	if v, ok := active(f.Compatibility); ok {
		c.MinCompatibility = parseThreshold(v)
	}
	if v, ok := active(f.Search); ok {
		c.Name = strings.ToLower(v)
	}
	return c
}

func active(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, Any) {
		return "", false
	}
	return v, true
}

// parseAgeRange accepts "<min>-<max>".
func parseAgeRange(v string) *AgeRange {
	lo, hi, ok := strings.Cut(v, "-")
	if !ok {
		return nil
	}
	minAge, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return nil
	}
	maxAge, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return nil
	}
	if minAge > maxAge {
		return nil
	}
	return &AgeRange{Min: minAge, Max: maxAge}
}

// parseThreshold accepts "<n>+" and, leniently, a bare "<n>".
func parseThreshold(v string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(v, "+")))
	if err != nil {
		return nil
	}
	return &n
}

// matchesProfile applies every criterion that does not depend on the score.
func (c Criteria) matchesProfile(cand *domain.Candidate) bool {
	if c.Age != nil {
		if cand.Age == nil || !c.Age.Contains(*cand.Age) {
			return false
		}
	}
	if c.City != "" && domain.Str(cand.City) != c.City {
		return false
	}
	if c.Religion != "" && domain.Str(cand.Religion) != c.Religion {
		return false
	}
	if c.Occupation != "" {
		if !domain.HasText(cand.Occupation) ||
			!strings.Contains(strings.ToLower(*cand.Occupation), c.Occupation) {
			return false
		}
	}
	if c.Name != "" && !strings.Contains(strings.ToLower(cand.User.FullName), c.Name) {
		return false
	}
	return true
}

func (c Criteria) matchesScore(score int) bool {
	return c.MinCompatibility == nil || score >= *c.MinCompatibility
}
