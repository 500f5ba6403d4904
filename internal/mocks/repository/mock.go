// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"github.com/stretchr/testify/mock"
)

// TestingT is the subset of testing.T the mocks need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t TestingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

func value[T any](args mock.Arguments, index int) T {
	var zero T
	if v, ok := args.Get(index).(T); ok {
		return v
	}

	return zero
}
