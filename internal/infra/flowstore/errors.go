package flowstore

import "errors"

var (
	// ErrFlowNotFound возвращается, когда флоу не найден или уже вытеснен по TTL
	ErrFlowNotFound = errors.New("flow not found")
)
