package services

// LceState is the phase of an asynchronous operation's result stream.
type LceState int

const (
	LceLoading LceState = iota
	LceData
	LceError
)

// Lce is one element of a Loading → (Data | Error) result stream. Streams
// produced by this package emit Loading first, then exactly one terminal
// element, then close.
type Lce[T any] struct {
	State LceState
	Value T
	Err   error
}

func loading[T any]() Lce[T] {
	return Lce[T]{State: LceLoading}
}

func data[T any](v T) Lce[T] {
	return Lce[T]{State: LceData, Value: v}
}

func lceError[T any](err error) Lce[T] {
	return Lce[T]{State: LceError, Err: err}
}
