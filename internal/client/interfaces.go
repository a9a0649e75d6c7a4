// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Console is the interactive front end driven by the App.
type Console interface {
	// Run blocks until the operator leaves the console or ctx is done.
	Run(ctx context.Context) error
}
