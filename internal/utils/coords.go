package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError - значение не удалось привести к целевому типу.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error for %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseDMS переводит координату вида "52°31′12″N" в десятичные градусы.
// Схема повторяет исходный пайплайн: сегмент секунд отрезается, градусная
// пунктуация схлопывается в один десятичный разделитель, результат
// округляется до 2 знаков. Знак берется из маркера полушария (S/W - минус).
func ParseDMS(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &ParseError{Field: "coordinate", Value: raw, Err: fmt.Errorf("empty value")}
	}

	sign := 1.0
	switch {
	case strings.HasSuffix(s, "N"), strings.HasSuffix(s, "E"):
		s = strings.TrimSpace(s[:len(s)-1])
	case strings.HasSuffix(s, "S"), strings.HasSuffix(s, "W"):
		sign = -1.0
		s = strings.TrimSpace(s[:len(s)-1])
	}

	// отрезаем сегмент секунд вместе с разделителем
	if i := strings.Index(s, "″"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "°", ".")
	s = strings.ReplaceAll(s, "′", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Field: "coordinate", Value: raw, Err: err}
	}

	return Round2(sign * v), nil
}

// Round2 округляет до 2 десятичных знаков.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParsePopulation чистит число вида "3,850,809(" - разделители тысяч
// и хвостовую пунктуацию из инфобокса.
func ParsePopulation(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimRight(s, "([. ")

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Field: "population", Value: raw, Err: err}
	}
	return v, nil
}
