package rng

// Weighted pairs an item with its sampling weight. Zero weights are legal;
// such items are unreachable except as a trailing fallback.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// PickWeighted draws target = next()*sum(weights) and walks the options in
// the order given, returning the first whose cumulative weight reaches the
// target. Callers must pass a non-empty slice; an empty slice yields the
// zero value.
func PickWeighted[T any](s *Stream, options []Weighted[T]) T {
	var zero T
	if len(options) == 0 {
		return zero
	}
	var sum float64
	for _, o := range options {
		sum += o.Weight
	}
	target := s.Next() * sum
	var cum float64
	for _, o := range options {
		cum += o.Weight
		if cum >= target {
			return o.Item
		}
	}
	return options[len(options)-1].Item
}

// Shuffle permutes list in place with a Fisher-Yates walk driven by s.
func Shuffle[T any](s *Stream, list []T) {
	for i := len(list) - 1; i > 0; i-- {
		j := int(s.Next() * float64(i+1))
		list[i], list[j] = list[j], list[i]
	}
}

// Sample returns one element uniformly. The list must be non-empty.
func Sample[T any](s *Stream, list []T) T {
	return list[int(s.Next()*float64(len(list)))]
}
