package guard

import "fmt"

const minimumCountParam = "minimumCount"

// MinCount checks that value is a non-nil slice holding at least
// minimumCount elements. A negative minimumCount is itself rejected on the
// "minimumCount" parameter, and the caller's message does not apply to it.
func MinCount[T any](parameterName string, value []T, minimumCount int, message ...string) error {
	if err := checkCount(parameterName, minimumCount); err != nil {
		return err
	}

	if value == nil {
		return nullArgument(parameterName, errorMessage(msgNull, message))
	}

	return checkLen(parameterName, len(value), minimumCount, message)
}

// NotEmptySlice checks that value is a non-nil slice with at least one element.
func NotEmptySlice[T any](parameterName string, value []T, message ...string) error {
	return MinCount(parameterName, value, 1, message...)
}

// MinCountMap is MinCount for maps.
func MinCountMap[K comparable, V any](parameterName string, value map[K]V, minimumCount int, message ...string) error {
	if err := checkCount(parameterName, minimumCount); err != nil {
		return err
	}

	if value == nil {
		return nullArgument(parameterName, errorMessage(msgNull, message))
	}

	return checkLen(parameterName, len(value), minimumCount, message)
}

// NotEmptyMap checks that value is a non-nil map with at least one entry.
func NotEmptyMap[K comparable, V any](parameterName string, value map[K]V, message ...string) error {
	return MinCountMap(parameterName, value, 1, message...)
}

func checkCount(parameterName string, minimumCount int) error {
	if err := checkParameterName(parameterName); err != nil {
		return err
	}

	_, err := GreaterThanOrEqual(minimumCountParam, minimumCount, 0,
		fmt.Sprintf("the minimum count of '%d' is less than 0 and invalid", minimumCount))
	return err
}

func checkLen(parameterName string, n, minimumCount int, message []string) error {
	if n < minimumCount {
		return invalidArgument(parameterName, errorMessage(
			fmt.Sprintf("a minimum of '%d' elements must be present in the collection", minimumCount), message))
	}
	return nil
}
