package store

// Result is the return shape of every store mutator. Mutators never panic
// and never propagate raw errors past the store boundary; pages read Success
// and show Err in a toast when it is set.
type Result[T any] struct {
	Success bool
	Data    *T
	Err     string
}

func ok[T any](data *T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](err error) Result[T] {
	return Result[T]{Success: false, Err: err.Error()}
}
