package advance_step

import "github.com/avekla/NSK-BookingFlow/internal/flow"

// FlowManager интерфейс менеджера флоу
type FlowManager interface {
	Get(id string) (*flow.Flow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
