package guard

import "github.com/google/uuid"

// NotNilUUID returns value unless it is uuid.Nil, which counts as absent.
func NotNilUUID(parameterName string, value uuid.UUID, message ...string) (uuid.UUID, error) {
	if err := checkParameterName(parameterName); err != nil {
		return value, err
	}

	if value == uuid.Nil {
		return value, nullArgument(parameterName, errorMessage(msgNull, message))
	}

	return value, nil
}

// NotNilUUIDPtr rejects both a nil pointer and uuid.Nil.
func NotNilUUIDPtr(parameterName string, value *uuid.UUID, message ...string) (uuid.UUID, error) {
	v, err := NotNil(parameterName, value, message...)
	if err != nil {
		return v, err
	}
	return NotNilUUID(parameterName, v, message...)
}
