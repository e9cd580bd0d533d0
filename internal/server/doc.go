// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

// Package server wires and runs the application's HTTP transport.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown.
package server
