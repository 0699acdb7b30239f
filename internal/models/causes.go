package models

// Cause tags shared by Opportunity.Cause and User.Interests.
const (
	CauseEnvironment  = "Environment & Sustainability"
	CauseHomelessness = "Homelessness Relief"
	CauseFoodSecurity = "Food Security and Hunger Relief"
	CauseHealth       = "Health and Wellness"
	CauseEducation    = "Education"
	CauseOther        = "Other"
)

// AllCauses is the closed list of cause/interest tags.
var AllCauses = []string{
	CauseEnvironment,
	CauseHomelessness,
	CauseFoodSecurity,
	CauseHealth,
	CauseEducation,
	CauseOther,
}

// ValidCause reports whether tag is one of AllCauses.
func ValidCause(tag string) bool {
	for _, c := range AllCauses {
		if c == tag {
			return true
		}
	}
	return false
}
