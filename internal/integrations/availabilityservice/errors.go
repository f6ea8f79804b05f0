package availabilityservice

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("availability: course not found")

	// ErrInvalidRequest возвращается, когда сервис отклонил параметры запроса
	ErrInvalidRequest = errors.New("availabilityservice client: invalid request")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("availabilityservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("availabilityservice client: invalid response")
)
