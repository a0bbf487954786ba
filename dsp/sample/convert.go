package sample

// FromFloat converts a float64 fraction to sample type T.
func FromFloat[T Type](v float64) T {
	var out T

	switch p := any(&out).(type) {
	case *Q15:
		*p = Q15FromFloat(v)
	case *Q31:
		*p = Q31FromFloat(v)
	case *float32:
		*p = float32(v)
	}

	return out
}

// ToFloat converts a sample of type T to a float64 fraction.
func ToFloat[T Type](v T) float64 {
	switch s := any(v).(type) {
	case Q15:
		return s.Float()
	case Q31:
		return s.Float()
	case float32:
		return float64(s)
	}

	return 0
}

// FromFloats converts src into a newly allocated slice of T.
func FromFloats[T Type](src []float64) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = FromFloat[T](v)
	}

	return out
}

// ToFloats converts src into a newly allocated float64 slice.
func ToFloats[T Type](src []T) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = ToFloat(v)
	}

	return out
}

// Name returns the short name of T: "q15", "q31" or "f32".
func Name[T Type]() string {
	var zero T

	switch any(zero).(type) {
	case Q15:
		return "q15"
	case Q31:
		return "q31"
	default:
		return "f32"
	}
}
