package flow

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	// Терминальное состояние: флоу не создается, UI возвращает в каталог
	ErrCourseNotFound = errors.New("flow: course not found")

	// ErrCourseNotBookable возвращается, когда курс не имеет ни одной локации
	// или допустимого размера группы
	ErrCourseNotBookable = errors.New("flow: course is not bookable")

	// ErrFlowNotFound возвращается, когда флоу не найден или вытеснен по TTL
	ErrFlowNotFound = errors.New("flow: flow not found")

	// ErrFlowCompleted возвращается при попытке изменить завершенный флоу
	ErrFlowCompleted = errors.New("flow: flow already completed")

	// ErrInvalidDate возвращается, когда дата вне допустимого окна
	// (строго после сегодняшнего дня, не дальше горизонта бронирования)
	ErrInvalidDate = errors.New("flow: invalid booking date")

	// ErrInvalidLocation возвращается, когда локация не входит в список курса
	ErrInvalidLocation = errors.New("flow: invalid location")

	// ErrInvalidPartySize возвращается, когда размер группы вне [1, maxPartySize]
	ErrInvalidPartySize = errors.New("flow: invalid party size")

	// ErrInvalidStudentIndex возвращается при записи имени по несуществующему индексу
	ErrInvalidStudentIndex = errors.New("flow: invalid student index")

	// ErrNotesTooLong возвращается, когда заметки превышают допустимую длину
	ErrNotesTooLong = errors.New("flow: notes too long")

	// ErrStaleSlot возвращается, когда выбранный слот отсутствует в актуальном
	// результате проверки доступности для текущих параметров драфта
	ErrStaleSlot = errors.New("flow: slot is not in the current availability result")

	// ErrStepNotReady возвращается, когда предикат завершения текущего шага не выполнен
	ErrStepNotReady = errors.New("flow: step completion predicate not satisfied")

	// ErrNoNextStep возвращается при попытке перейти вперед с последнего шага
	ErrNoNextStep = errors.New("flow: already at the last step")

	// ErrAtFirstStep возвращается при попытке перейти назад с первого шага
	ErrAtFirstStep = errors.New("flow: already at the first step")

	// ErrSubmissionInFlight возвращается при повторной отправке, пока
	// предыдущая еще не завершилась
	ErrSubmissionInFlight = errors.New("flow: submission already in flight")

	// ErrSubmissionRejected возвращается, когда BookingService отклонил бронирование
	// Оборачивается с текстом detail из ответа сервиса
	ErrSubmissionRejected = errors.New("flow: booking submission rejected")

	// ErrSubmissionFailed возвращается при транспортной ошибке отправки бронирования
	ErrSubmissionFailed = errors.New("flow: booking submission failed")

	// ErrDraftInvalid возвращается защитной проверкой инвариантов перед отправкой
	// Не пользовательский путь: UI не должен допускать такое состояние
	ErrDraftInvalid = errors.New("flow: draft violates review preconditions")

	// ErrInternal возвращается при внутренних ошибках флоу
	ErrInternal = errors.New("flow: internal error")
)

// Сообщения, показываемые пользователю на текущем шаге
// Клиенты системы — носители английского/немецкого/датского, поэтому
// пользовательские тексты на английском
const (
	msgInvalidDate        = "Please choose a date between tomorrow and 30 days from now."
	msgInvalidLocation    = "The selected location is not offered for this course."
	msgInvalidPartySize   = "The number of students is out of range for this course."
	msgNotesTooLong       = "Notes are too long."
	msgStaleSlot          = "The selected time slot is no longer available. Please pick another one."
	msgScheduleIncomplete = "Please select a date and a location first."
	msgSlotRequired       = "Please select a time slot first."
	msgNamesIncomplete    = "Please enter a name for every student."
	msgAvailabilityFailed = "Failed to check availability. Please try again."
	msgSubmissionFallback = "Failed to create booking. Please try again."
)
