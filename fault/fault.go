// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrBlackHeightMismatch      = ProcessError("black height differs between paths")
	ErrDereferenceEnd           = InvalidError("cannot dereference the end iterator")
	ErrDuplicateWorkloadName    = ExistsError("duplicate workload name")
	ErrEmptyContainer           = InvalidError("container is empty")
	ErrEraseEnd                 = InvalidError("cannot erase the end iterator")
	ErrForeignIterator          = InvalidError("iterator belongs to another container")
	ErrIndexOutOfRange          = InvalidError("index out of range")
	ErrInvalidChunkCount        = InvalidError("chunks per slab must be positive")
	ErrInvalidKeyCount          = InvalidError("key count must be positive")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidOperationCount    = InvalidError("operation count must be positive")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrMissingWorkloads         = NotFoundError("no workloads are configured")
	ErrMovedFrom                = InvalidError("container has been moved from or destroyed")
	ErrNilSentinelNotBlack      = ProcessError("nil sentinel is not black")
	ErrOrderViolation           = ProcessError("keys are out of order")
	ErrParentLinkBroken         = ProcessError("parent link is inconsistent")
	ErrRedNodeHasRedChild       = ProcessError("red node has a red child")
	ErrRootNotBlack             = ProcessError("root node is not black")
	ErrSizeMismatch             = ProcessError("size does not match node count")
	ErrSoakMismatch             = ProcessError("container disagrees with reference map")
	ErrUnexpectedConfigFileType = InvalidError("configuration file did not return a table")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
