package employee

import "time"

// Category is the skill category of a construction worker. The values are the
// standard Spanish job titles used on site and are stored verbatim.
type Category string

const (
	CategoryHelper      Category = "ayudante"
	CategorySemiSkilled Category = "medio oficial"
	CategorySkilled     Category = "oficial"
	CategorySpecialized Category = "oficial especializado"
	CategoryForeman     Category = "capataz"
)

var AllCategories = []Category{
	CategoryHelper,
	CategorySemiSkilled,
	CategorySkilled,
	CategorySpecialized,
	CategoryForeman,
}

// IsValidCategory checks if a category belongs to the fixed enumeration.
func IsValidCategory(c Category) bool {
	for _, cat := range AllCategories {
		if cat == c {
			return true
		}
	}
	return false
}

// Employee is a worker assigned to exactly one site. Employees are never
// hard-deleted: removal flips Active to false so historical attendance keeps
// its reference.
type Employee struct {
	ID         string
	SiteID     string
	FirstName  string
	LastName   string
	BirthDate  *time.Time
	NationalID string
	Category   Category
	HireDate   *time.Time
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
