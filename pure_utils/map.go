package pure_utils

// Map returns a new slice with the same length as src, but with values transformed by f
func Map[T, U any](src []T, f func(T) U) []U {
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}

// GroupBy indexes src by the key returned by f, keeping the order of src inside each group.
func GroupBy[K comparable, T any](src []T, f func(T) K) map[K][]T {
	result := make(map[K][]T)
	for _, item := range src {
		key := f(item)
		result[key] = append(result[key], item)
	}
	return result
}

// KeyBy indexes src by the key returned by f. Later items win on duplicate keys.
func KeyBy[K comparable, T any](src []T, f func(T) K) map[K]T {
	result := make(map[K]T, len(src))
	for _, item := range src {
		result[f(item)] = item
	}
	return result
}
