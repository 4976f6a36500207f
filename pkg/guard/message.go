package guard

import "github.com/samber/lo"

// errorMessage picks the caller-supplied message when one was passed,
// otherwise the default text. An explicitly passed empty string still wins.
func errorMessage(defaultMessage string, message []string) string {
	return lo.FirstOr(message, defaultMessage)
}
