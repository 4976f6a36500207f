package guard

const msgNull = "parameter can not be null"

// NotNil dereferences value or fails with ErrNullArgument when it is nil.
func NotNil[T any](parameterName string, value *T, message ...string) (T, error) {
	var zero T
	if err := checkParameterName(parameterName); err != nil {
		return zero, err
	}

	if value == nil {
		return zero, nullArgument(parameterName, errorMessage(msgNull, message))
	}

	return *value, nil
}
