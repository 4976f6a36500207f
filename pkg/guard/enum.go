package guard

import "github.com/samber/lo"

const (
	msgInvalidEnum = "the parameter value is not valid for the enum"
	msgDefaultEnum = "the parameter value cannot be the default enum value"
)

// Enum is implemented by enumeration types that can list their declared
// members. The zero value of the type is treated as its default member.
// Members must return every declared constant of the type: a constant left
// out of the list is rejected by ValidEnum like any undeclared value.
//
//	type Status int
//
//	const (
//		StatusUnknown Status = iota
//		StatusActive
//	)
//
//	func (Status) Members() []Status { return []Status{StatusUnknown, StatusActive} }
type Enum[T any] interface {
	comparable
	Members() []T
}

// ValidEnum returns value if it is one of the declared members of its type.
// Values converted from an undeclared underlying integer are rejected.
func ValidEnum[T Enum[T]](parameterName string, value T, message ...string) (T, error) {
	if err := checkParameterName(parameterName); err != nil {
		return value, err
	}

	if !lo.Contains(value.Members(), value) {
		return value, outOfRange(parameterName, errorMessage(msgInvalidEnum, message))
	}

	return value, nil
}

// ValidEnumAndNotDefault is ValidEnum that also rejects the zero member.
func ValidEnumAndNotDefault[T Enum[T]](parameterName string, value T, message ...string) (T, error) {
	v, err := ValidEnum(parameterName, value, message...)
	if err != nil {
		return v, err
	}

	var zero T
	if v == zero {
		return v, outOfRange(parameterName, errorMessage(msgDefaultEnum, message))
	}

	return v, nil
}

// ValidEnumPtr is ValidEnum for an optional value; nil fails with ErrNullArgument.
func ValidEnumPtr[T Enum[T]](parameterName string, value *T, message ...string) (T, error) {
	v, err := NotNil(parameterName, value, message...)
	if err != nil {
		return v, err
	}
	return ValidEnum(parameterName, v, message...)
}

// ValidEnumAndNotDefaultPtr is ValidEnumAndNotDefault for an optional value.
func ValidEnumAndNotDefaultPtr[T Enum[T]](parameterName string, value *T, message ...string) (T, error) {
	v, err := NotNil(parameterName, value, message...)
	if err != nil {
		return v, err
	}
	return ValidEnumAndNotDefault(parameterName, v, message...)
}
