package repokit

// Binder builds a repository bound to a specific Queryer, letting the
// same repo run against the pool or an open transaction.
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain function into a Binder
type BindFunc[T any] func(Queryer) T

func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }
