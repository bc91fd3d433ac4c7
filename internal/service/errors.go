package service

import "fmt"

// ConstraintError - входные последовательности нарушают контракт
// (например, разной длины). Поднимается до любых сетевых запросов.
type ConstraintError struct {
	Message string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation: %s", e.Message)
}
