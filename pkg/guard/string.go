package guard

import (
	"strings"
	"unicode"
)

const (
	parameterNameParam  = "parameterName"
	msgInvalidParamName = "invalid parameter, value can not be null, empty, or whitespace"
	msgNullOrEmpty      = "parameter can not be null or empty"
	msgNullOrWhitespace = "parameter can not be null, empty, or contain only whitespace characters"
)

// checkParameterName is the self-check every validator runs on its own
// parameterName argument before looking at the value.
func checkParameterName(parameterName string) error {
	if isBlank(parameterName) {
		return invalidArgument(parameterNameParam, msgInvalidParamName)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// NotEmpty returns value if it is not the empty string.
func NotEmpty(parameterName, value string, message ...string) (string, error) {
	if err := checkParameterName(parameterName); err != nil {
		return "", err
	}

	if value == "" {
		return "", invalidArgument(parameterName, errorMessage(msgNullOrEmpty, message))
	}

	return value, nil
}

// NotEmptyPtr dereferences value, rejecting a nil pointer or an empty string.
func NotEmptyPtr(parameterName string, value *string, message ...string) (string, error) {
	if err := checkParameterName(parameterName); err != nil {
		return "", err
	}

	if value == nil {
		return "", nullArgument(parameterName, errorMessage(msgNullOrEmpty, message))
	}

	return NotEmpty(parameterName, *value, message...)
}

// NotBlank returns value if it contains at least one non-whitespace rune.
func NotBlank(parameterName, value string, message ...string) (string, error) {
	if err := checkParameterName(parameterName); err != nil {
		return "", err
	}

	if isBlank(value) {
		return "", invalidArgument(parameterName, errorMessage(msgNullOrWhitespace, message))
	}

	return value, nil
}

// NotBlankPtr dereferences value, rejecting a nil pointer or a blank string.
func NotBlankPtr(parameterName string, value *string, message ...string) (string, error) {
	if err := checkParameterName(parameterName); err != nil {
		return "", err
	}

	if value == nil {
		return "", nullArgument(parameterName, errorMessage(msgNullOrWhitespace, message))
	}

	return NotBlank(parameterName, *value, message...)
}
