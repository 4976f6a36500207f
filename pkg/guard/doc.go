// Package guard provides inline guard-clause helpers for validating function
// parameters at the top of a function body.
//
// Each helper checks one value and either returns it, narrowed to a usable
// form, or returns an *ArgumentError naming the offending parameter. There is
// no shared state, so every function is safe to call from any goroutine.
//
// # Absent values
//
// Types that cannot be nil (strings, numbers, enum types) are checked directly.
// Types that can carry absence are checked for it first:
//   - pointers: the ...Ptr variants and NotNil reject nil
//   - slices and maps: a nil slice or map is absent, an empty one is not
//   - uuid.UUID: uuid.Nil is absent
//
// # Usage
//
//	func NewClient(baseURL string, timeout float64, retries []time.Duration) (*Client, error) {
//	    if _, err := guard.NotBlank("baseURL", baseURL); err != nil {
//	        return nil, err
//	    }
//	    if _, err := guard.GreaterThan("timeout", timeout, 0); err != nil {
//	        return nil, err
//	    }
//	    if err := guard.NotEmptySlice("retries", retries, "at least one retry delay is required"); err != nil {
//	        return nil, err
//	    }
//	    // ...
//	}
//
// Every helper accepts an optional trailing message. When given, it replaces
// the default text of the error but never the parameter name.
//
// # Error Handling
//
// Errors wrap one of three sentinels, so callers can branch with errors.Is:
//   - ErrNullArgument    – the value is absent
//   - ErrInvalidArgument – the value is present but empty, blank or too short
//   - ErrOutOfRange      – the value fails a bound, enum or default check
//
// Use ParameterName or errors.As with *ArgumentError to get the offending
// parameter. Each helper also checks its own parameterName argument; a blank
// name fails with ErrInvalidArgument on the parameter "parameterName".
//
// *ArgumentError implements slog.LogValuer, so passing it to slog.Any logs the
// kind, parameter and message as a group.
package guard
