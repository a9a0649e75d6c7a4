// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/mission-planner/internal/adapter"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Wrong credentials or the session has expired"
	case errors.Is(err, adapter.ErrForbidden):
		return "Access denied"
	case errors.Is(err, adapter.ErrNotFound):
		return "Record not found, it may have been deleted"
	case errors.Is(err, adapter.ErrConflict):
		return "Username is already taken"
	case errors.Is(err, adapter.ErrBadRequest):
		return "The server rejected the request: " + err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
