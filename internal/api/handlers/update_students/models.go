package update_students

// UpdateStudentsRequest HTTP request model
// StudentNames заменяет имена по позициям (длина должна совпадать
// с текущим размером группы), Notes перезаписывает заметки целиком
type UpdateStudentsRequest struct {
	StudentNames []string `json:"studentNames,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

// IsEmpty возвращает true, если не указано ни одно поле
func (r *UpdateStudentsRequest) IsEmpty() bool {
	return r.StudentNames == nil && r.Notes == nil
}
