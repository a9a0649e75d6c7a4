// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive console application runtime.
//
// It wires the API adapter and the terminal UI into a single process
// lifecycle bound to the termination signals of the process.
package client
