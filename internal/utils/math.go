// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает значение отрезком [min, max].
func Clamp(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}
