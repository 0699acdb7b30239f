package models

// Category is the organizational type of a StudentGroup.
type Category string

const (
	CategoryFraternity     Category = "Fraternity"
	CategorySorority       Category = "Sorority"
	CategoryProfessional   Category = "Professional Club"
	CategorySportsTeam     Category = "Sports Team"
	CategoryPerformingArts Category = "Performing Arts Group"
	CategoryProjectTeam    Category = "Project Team"
)

// AllCategories lists the closed set of group categories in display order.
var AllCategories = []Category{
	CategoryFraternity,
	CategorySorority,
	CategoryProfessional,
	CategorySportsTeam,
	CategoryPerformingArts,
	CategoryProjectTeam,
}

// Valid reports whether c is one of AllCategories.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// StudentGroup represents a campus organization.
//
// Membership is tracked on User.GroupIDs; the group keeps no member list.
type StudentGroup struct {
	// ID is the unique numeric identifier for the group.
	ID int

	// Name is the display name of the group (e.g., "Alpha Phi Omega").
	Name string

	// Category scopes the group's leaderboard.
	Category Category
}
