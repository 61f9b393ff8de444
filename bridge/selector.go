package bridge

import "math/rand"

type picker interface {
	pick(n int) int
}

type randomPicker struct{}

func (randomPicker) pick(n int) int {
	return rand.Intn(n)
}
