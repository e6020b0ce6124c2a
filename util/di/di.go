package di

import (
	"go.uber.org/dig"
)

// Option registers a constructor with the container.
type Option func(dc *dig.Container) error

type Container struct {
	dc *dig.Container
}

// New creates a container. Constructors are only called once the value they provide is requested.
func New(opts ...Option) (*Container, error) {
	dc := dig.New(dig.DeferAcyclicVerification())

	for _, opt := range opts {
		if err := opt(dc); err != nil {
			return nil, err
		}
	}

	return &Container{dc: dc}, nil
}

// Get builds, or returns the already built, value of type T.
func Get[T any](c *Container) (T, error) {
	var result T

	err := c.dc.Invoke(func(v T) {
		result = v
	})

	return result, err
}

// Invoke calls fn with its arguments resolved from the container.
func (c *Container) Invoke(fn interface{}) error {
	return c.dc.Invoke(fn)
}

func Provider(constructor interface{}, opts ...dig.ProvideOption) Option {
	return func(dc *dig.Container) error {
		return dc.Provide(constructor, opts...)
	}
}

// Value provides an already constructed value.
func Value[T any](v T) Option {
	return Provider(func() T {
		return v
	})
}
