// Package mapper holds generic helpers for converting between layer types.
package mapper

// MapSlice applies fn to every element of items. The result is never nil,
// so an empty listing encodes as [] rather than null.
func MapSlice[S, T any](items []S, fn func(S) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// MapSliceErr is MapSlice for conversions that can fail. It stops at the
// first error.
func MapSliceErr[S, T any](items []S, fn func(S) (T, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		v, err := fn(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
