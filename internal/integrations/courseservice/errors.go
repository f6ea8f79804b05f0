package courseservice

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("course not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("courseservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("courseservice client: invalid response")
)
