package services

import "math/rand/v2"

// Picker chooses an index in [0, n) for n > 0. Every index must be equally
// likely for quiz play to be fair.
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a plain function to Picker.
type PickerFunc func(n int) int

func (f PickerFunc) Pick(n int) int { return f(n) }

type randomPicker struct{}

// NewRandomPicker returns a Picker backed by the runtime's seeded generator.
func NewRandomPicker() Picker {
	return randomPicker{}
}

func (randomPicker) Pick(n int) int {
	return rand.IntN(n)
}
