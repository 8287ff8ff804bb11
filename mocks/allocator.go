// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock doubles for the allocator interfaces, written
// in the layout mockgen produces since mockgen cannot handle generic
// interfaces
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockAllocator is a mock of memory.Allocator interface.
type MockAllocator[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockAllocatorMockRecorder[T]
}

// MockAllocatorMockRecorder is the mock recorder for MockAllocator.
type MockAllocatorMockRecorder[T any] struct {
	mock *MockAllocator[T]
}

// NewMockAllocator creates a new mock instance.
func NewMockAllocator[T any](ctrl *gomock.Controller) *MockAllocator[T] {
	mock := &MockAllocator[T]{ctrl: ctrl}
	mock.recorder = &MockAllocatorMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAllocator[T]) EXPECT() *MockAllocatorMockRecorder[T] {
	return m.recorder
}

// Allocate mocks base method.
func (m *MockAllocator[T]) Allocate() *T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Allocate")
	ret0, _ := ret[0].(*T)
	return ret0
}

// Allocate indicates an expected call of Allocate.
func (mr *MockAllocatorMockRecorder[T]) Allocate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Allocate", reflect.TypeOf((*MockAllocator[T])(nil).Allocate))
}

// Free mocks base method.
func (m *MockAllocator[T]) Free(arg0 *T) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Free", arg0)
}

// Free indicates an expected call of Free.
func (mr *MockAllocatorMockRecorder[T]) Free(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Free", reflect.TypeOf((*MockAllocator[T])(nil).Free), arg0)
}

// MockReleasingAllocator is a mock of an allocator that also
// implements memory.Releaser.
type MockReleasingAllocator[T any] struct {
	MockAllocator[T]
	recorder *MockReleasingAllocatorMockRecorder[T]
}

// MockReleasingAllocatorMockRecorder is the mock recorder for MockReleasingAllocator.
type MockReleasingAllocatorMockRecorder[T any] struct {
	MockAllocatorMockRecorder[T]
	mock *MockReleasingAllocator[T]
}

// NewMockReleasingAllocator creates a new mock instance.
func NewMockReleasingAllocator[T any](ctrl *gomock.Controller) *MockReleasingAllocator[T] {
	mock := &MockReleasingAllocator[T]{}
	mock.MockAllocator.ctrl = ctrl
	mock.MockAllocator.recorder = &MockAllocatorMockRecorder[T]{&mock.MockAllocator}
	mock.recorder = &MockReleasingAllocatorMockRecorder[T]{
		MockAllocatorMockRecorder: MockAllocatorMockRecorder[T]{&mock.MockAllocator},
		mock:                      mock,
	}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReleasingAllocator[T]) EXPECT() *MockReleasingAllocatorMockRecorder[T] {
	return m.recorder
}

// Release mocks base method.
func (m *MockReleasingAllocator[T]) Release() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Release")
}

// Release indicates an expected call of Release.
func (mr *MockReleasingAllocatorMockRecorder[T]) Release() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Release", reflect.TypeOf((*MockReleasingAllocator[T])(nil).Release))
}
