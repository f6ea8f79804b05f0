package domain

// Booking window constraints
const (
	// MinAdvanceBookingDays минимальное число дней до даты бронирования
	// (бронировать можно только начиная с завтрашнего дня)
	MinAdvanceBookingDays = 1

	// BookingHorizonDays максимальный горизонт бронирования в днях (включительно)
	BookingHorizonDays = 30
)

// Party size and input constraints
const (
	MinPartySize   = 1
	MaxNotesLength = 500
)

// DepositRate доля предоплаты от полной стоимости бронирования
const DepositRate = 0.30

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
