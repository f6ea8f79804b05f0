package domain

// CourseDescriptor represents the bookable parameters of one course.
// Loaded once per flow instance and never mutated afterwards.
type CourseDescriptor struct {
	ID                 string
	Name               string
	Description        string
	DurationHours      float64
	MaxPartySize       int
	BasePrice          float64 // EUR, per person
	SkillLevelRequired string
	Locations          []string
	EquipmentIncluded  []string
}

// HasLocation returns true if the given location code is valid for this course
func (c *CourseDescriptor) HasLocation(location string) bool {
	for _, loc := range c.Locations {
		if loc == location {
			return true
		}
	}
	return false
}

// DefaultLocation returns the first location of the course
// (the draft is seeded with it on flow creation)
func (c *CourseDescriptor) DefaultLocation() string {
	if len(c.Locations) == 0 {
		return ""
	}
	return c.Locations[0]
}

// IsValidPartySize returns true if n is within the bookable party size range
func (c *CourseDescriptor) IsValidPartySize(n int) bool {
	return n >= MinPartySize && n <= c.MaxPartySize
}
