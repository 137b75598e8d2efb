// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

import (
	"errors"
	"fmt"
)

var (
	errNotFound        = errors.New("not found")
	errInvalidArgument = errors.New("invalid argument")
	errOutOfRange      = errors.New("out of range")
	errTransport       = errors.New("transport failure")
)

func ErrNotFoundWithParam(what string, paramName string, paramValue interface{}) error {
	return fmt.Errorf("%s %w with %s=%v", what, errNotFound, paramName, paramValue)
}

func ErrInvalidArgument(name string, value interface{}) error {
	return fmt.Errorf("%w '%s': %v", errInvalidArgument, name, value)
}

func ErrInvalidArgumentWithReason(name string, value interface{}, reason string) error {
	return fmt.Errorf("%w '%s'=%v (%s)", errInvalidArgument, name, value, reason)
}

// ErrOutOfRange signals a group-id field that exceeds its bit width. This is
// a programmer or config error and must never be masked by truncation.
func ErrOutOfRange(field string, value interface{}, max interface{}) error {
	return fmt.Errorf("%s=%v %w (max %v)", field, value, errOutOfRange, max)
}

func ErrTransport(op string, datapathID uint64) error {
	return fmt.Errorf("%s on datapath 0x%x: %w", op, datapathID, errTransport)
}
