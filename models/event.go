// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package models

// Change-notification actions. Notifications are unfiltered: subscribers
// receive every action for a watched table and are expected to re-fetch the
// whole table rather than patch incrementally.
const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// ChangeEvent is a change notification for a watched ledger table. It names
// the table and the action but carries no row data: the payload of a
// notification is "something changed", nothing more.
type ChangeEvent struct {
	// Table is the affected table name ("demandes" or "doubles").
	Table string `json:"table"`

	// Action is one of ActionInsert, ActionUpdate, ActionDelete.
	Action string `json:"action"`
}
