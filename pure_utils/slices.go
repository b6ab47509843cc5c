package pure_utils

import (
	"github.com/hashicorp/go-set/v2"
)

func Filter[T any](src []T, keep func(T) bool) []T {
	result := make([]T, 0, len(src))
	for _, item := range src {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

func Uniq[T comparable](src []T) []T {
	seen := set.New[T](len(src))
	result := make([]T, 0, len(src))
	for _, item := range src {
		if seen.Insert(item) {
			result = append(result, item)
		}
	}
	return result
}
