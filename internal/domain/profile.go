package domain

import "time"

// Gender values offered by the client. The column itself is free text.
const (
	GenderWoman     = "Woman"
	GenderMan       = "Man"
	GenderNonBinary = "Non-binary"
)

// Profile belongs to exactly one User. Every attribute except the user link
// is optional; nil means "not provided", which is distinct from an empty string.
type Profile struct {
	ID              int       `json:"id" db:"id"`
	UserID          int       `json:"userId" db:"user_id"`
	Age             *int      `json:"age" db:"age"`
	Gender          *string   `json:"gender" db:"gender"`
	City            *string   `json:"city" db:"city"`
	About           *string   `json:"about" db:"about"`
	Religion        *string   `json:"religion" db:"religion"`
	Height          *string   `json:"height" db:"height"`
	MaritalStatus   *string   `json:"maritalStatus" db:"marital_status"`
	MotherTongue    *string   `json:"motherTongue" db:"mother_tongue"`
	EatingHabits    *string   `json:"eatingHabits" db:"eating_habits"`
	DrinkingSmoking *string   `json:"drinkingSmoking" db:"drinking_smoking"`
	Education       *string   `json:"education" db:"education"`
	Occupation      *string   `json:"occupation" db:"occupation"`
	IncomeRange     *string   `json:"incomeRange" db:"income_range"`
	FamilyDetails   *string   `json:"familyDetails" db:"family_details"`
	ImageURL        *string   `json:"imageUrl" db:"image_url"`
	LastActive      time.Time `json:"lastActive" db:"last_active"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// Candidate is a profile together with its owning user, the unit the
// matching engine works on.
type Candidate struct {
	Profile
	User User `json:"user" db:"user"`
}

// Str returns the value of an optional string attribute, or "" when unset.
func Str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// HasText reports whether an optional attribute is set and non-empty.
func HasText(s *string) bool {
	return s != nil && *s != ""
}
