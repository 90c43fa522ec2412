package domain

// MatchViewModel is the presentation form of a candidate for one viewer.
// It is built per request and never persisted.
type MatchViewModel struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Age                *int    `json:"age"`
	City               *string `json:"city"`
	Religion           *string `json:"religion"`
	Occupation         *string `json:"occupation"`
	Height             *string `json:"height,omitempty"`
	Image              string  `json:"image"`
	Compatibility      string  `json:"compatibility"`
	CompatibilityScore int     `json:"compatibilityScore"`
	Badge              string  `json:"badge"`
}
