// Package mocks provides gomock mocks of the streaming interfaces, written
// in the layout mockgen produces.  mockgen cannot yet generate mocks for
// generic interfaces so these are maintained by hand.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockStreamingIterator is a mock of StreamingIterator interface.
type MockStreamingIterator[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockStreamingIteratorMockRecorder[T]
}

// MockStreamingIteratorMockRecorder is the mock recorder for MockStreamingIterator.
type MockStreamingIteratorMockRecorder[T any] struct {
	mock *MockStreamingIterator[T]
}

// NewMockStreamingIterator creates a new mock instance.
func NewMockStreamingIterator[T any](ctrl *gomock.Controller) *MockStreamingIterator[T] {
	mock := &MockStreamingIterator[T]{ctrl: ctrl}
	mock.recorder = &MockStreamingIteratorMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStreamingIterator[T]) EXPECT() *MockStreamingIteratorMockRecorder[T] {
	return m.recorder
}

// Advance mocks base method.
func (m *MockStreamingIterator[T]) Advance(arg0 context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Advance", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// Advance indicates an expected call of Advance.
func (mr *MockStreamingIteratorMockRecorder[T]) Advance(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Advance", reflect.TypeOf((*MockStreamingIterator[T])(nil).Advance), arg0)
}

// Get mocks base method.
func (m *MockStreamingIterator[T]) Get() *T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get")
	ret0, _ := ret[0].(*T)
	return ret0
}

// Get indicates an expected call of Get.
func (mr *MockStreamingIteratorMockRecorder[T]) Get() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockStreamingIterator[T])(nil).Get))
}
