package guard

import "fmt"

// Numeric covers every built-in integer and floating point kind.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// The checks below are written as negated comparisons so that NaN fails all of them.

// GreaterThan returns value if it is strictly greater than minimum.
func GreaterThan[T Numeric](parameterName string, value, minimum T, message ...string) (T, error) {
	if err := checkParameterName(parameterName); err != nil {
		return value, err
	}

	if !(value > minimum) {
		return value, outOfRange(parameterName,
			errorMessage(fmt.Sprintf("the parameter must be greater than '%v'", minimum), message))
	}

	return value, nil
}

// GreaterThanOrEqual returns value if it is greater than or equal to minimum.
func GreaterThanOrEqual[T Numeric](parameterName string, value, minimum T, message ...string) (T, error) {
	if err := checkParameterName(parameterName); err != nil {
		return value, err
	}

	if !(value >= minimum) {
		return value, outOfRange(parameterName,
			errorMessage(fmt.Sprintf("the parameter must be greater than or equal to '%v'", minimum), message))
	}

	return value, nil
}

// LessThan returns value if it is strictly less than maximum.
func LessThan[T Numeric](parameterName string, value, maximum T, message ...string) (T, error) {
	if err := checkParameterName(parameterName); err != nil {
		return value, err
	}

	if !(value < maximum) {
		return value, outOfRange(parameterName,
			errorMessage(fmt.Sprintf("the parameter must be less than '%v'", maximum), message))
	}

	return value, nil
}

// LessThanOrEqual returns value if it is less than or equal to maximum.
func LessThanOrEqual[T Numeric](parameterName string, value, maximum T, message ...string) (T, error) {
	if err := checkParameterName(parameterName); err != nil {
		return value, err
	}

	if !(value <= maximum) {
		return value, outOfRange(parameterName,
			errorMessage(fmt.Sprintf("the parameter must be less than or equal to '%v'", maximum), message))
	}

	return value, nil
}

// GreaterThanPtr is GreaterThan for an optional value; nil fails with ErrNullArgument.
func GreaterThanPtr[T Numeric](parameterName string, value *T, minimum T, message ...string) (T, error) {
	v, err := NotNil(parameterName, value, message...)
	if err != nil {
		return v, err
	}
	return GreaterThan(parameterName, v, minimum, message...)
}

// GreaterThanOrEqualPtr is GreaterThanOrEqual for an optional value.
func GreaterThanOrEqualPtr[T Numeric](parameterName string, value *T, minimum T, message ...string) (T, error) {
	v, err := NotNil(parameterName, value, message...)
	if err != nil {
		return v, err
	}
	return GreaterThanOrEqual(parameterName, v, minimum, message...)
}

// LessThanPtr is LessThan for an optional value.
func LessThanPtr[T Numeric](parameterName string, value *T, maximum T, message ...string) (T, error) {
	v, err := NotNil(parameterName, value, message...)
	if err != nil {
		return v, err
	}
	return LessThan(parameterName, v, maximum, message...)
}

// LessThanOrEqualPtr is LessThanOrEqual for an optional value.
func LessThanOrEqualPtr[T Numeric](parameterName string, value *T, maximum T, message ...string) (T, error) {
	v, err := NotNil(parameterName, value, message...)
	if err != nil {
		return v, err
	}
	return LessThanOrEqual(parameterName, v, maximum, message...)
}
