package clients

import "fmt"

// APIError - внешний API вернул не-2xx статус.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

// NetworkError - запрос не удалось выполнить или он оборвался.
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ShapeError - в ответе нет ожидаемого поля или структура не совпадает.
type ShapeError struct {
	Source string
	Field  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected %s response shape: missing %s", e.Source, e.Field)
}
