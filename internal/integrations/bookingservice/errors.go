package bookingservice

import "errors"

var (
	// ErrBookingRejected возвращается, когда сервис отклонил создание бронирования
	// Текст detail из ответа сервиса добавляется при оборачивании
	ErrBookingRejected = errors.New("booking rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)
