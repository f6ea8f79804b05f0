package courseservice

// Course модель курса из CourseService
type Course struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	CourseType         string   `json:"course_type"`
	Description        string   `json:"description"`
	DurationHours      float64  `json:"duration_hours"`
	MaxStudents        int      `json:"max_students"`
	BasePrice          float64  `json:"base_price"` // EUR, за человека
	Spots              []string `json:"spots"`      // коды локаций (sylt, romo)
	SkillLevelRequired string   `json:"skill_level_required"`
	EquipmentIncluded  []string `json:"equipment_included"`
	IsActive           bool     `json:"is_active"`
}

// ErrorResponse модель ошибки от CourseService
type ErrorResponse struct {
	Detail string `json:"detail"`
}
