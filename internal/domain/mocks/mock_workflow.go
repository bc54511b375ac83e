// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"navmend.dev/pkg/navmend/internal/domain"
	m "navmend.dev/pkg/navmend/internal/model"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted when the test ends.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Test(t)

	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}

// Update provides a mock function with the given fields: ctx, args.
func (_m *MockWorkflow) Update(ctx context.Context, args domain.UpdateArgs) (m.Summary, error) {
	ret := _m.Called(ctx, args)

	var summary m.Summary
	if fn, ok := ret.Get(0).(func(context.Context, domain.UpdateArgs) m.Summary); ok {
		summary = fn(ctx, args)
	} else if ret.Get(0) != nil {
		summary = ret.Get(0).(m.Summary)
	}

	return summary, ret.Error(1)
}

// List provides a mock function with the given fields: ctx, args.
func (_m *MockWorkflow) List(ctx context.Context, args domain.ListArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

// Check provides a mock function with the given fields: ctx, args.
func (_m *MockWorkflow) Check(ctx context.Context, args domain.CheckArgs) (m.Audit, error) {
	ret := _m.Called(ctx, args)

	var audit m.Audit
	if ret.Get(0) != nil {
		audit = ret.Get(0).(m.Audit)
	}

	return audit, ret.Error(1)
}
