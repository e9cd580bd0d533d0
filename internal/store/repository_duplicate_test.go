// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var duplicateColumns = []string{"id", "joueur", "objet", "quantite_total", "restant", "reserved_by", "created_at"}

func newTestDuplicateRepo(t *testing.T) (*duplicateRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &duplicateRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestDuplicateRepository_List(t *testing.T) {
	repo, mock, db := newTestDuplicateRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(duplicateColumns).
		AddRow("id-1", "Susu", "Module de visée", 3, 2, "Natdemon", time.Now())

	mock.ExpectQuery("SELECT id, joueur, objet, quantite_total, restant, reserved_by, created_at FROM doubles").
		WillReturnRows(rows)

	items, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Total)
	assert.Equal(t, 2, items[0].Remaining)
	assert.Equal(t, "Natdemon", items[0].ReservedBy)
}

func TestDuplicateRepository_Insert_TotalEqualsRemaining(t *testing.T) {
	repo, mock, db := newTestDuplicateRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(duplicateColumns).
		AddRow("server-id", "Susu", "Module de visée", 3, 3, "", time.Now())

	mock.ExpectQuery("INSERT INTO doubles").
		WithArgs(sqlmock.AnyArg(), "Susu", "Module de visée", 3, 3).
		WillReturnRows(rows)

	saved, err := repo.Insert(context.Background(), models.DuplicateItem{
		Player:    "Susu",
		Item:      "Module de visée",
		Total:     3,
		Remaining: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "server-id", saved.ID)
	assert.Equal(t, saved.Total, saved.Remaining)
}

func TestDuplicateRepository_Patch_Reservation(t *testing.T) {
	repo, mock, db := newTestDuplicateRepo(t)
	defer db.Close()

	remaining := 2
	reservedBy := "Natdemon"

	rows := sqlmock.NewRows(duplicateColumns).
		AddRow("id-1", "Susu", "Module de visée", 3, remaining, reservedBy, time.Now())

	mock.ExpectQuery("UPDATE doubles SET").
		WithArgs(remaining, reservedBy, "id-1").
		WillReturnRows(rows)

	updated, err := repo.Patch(context.Background(), "id-1", models.DuplicatePatch{
		Remaining:  &remaining,
		ReservedBy: &reservedBy,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Remaining)
	assert.Equal(t, "Natdemon", updated.ReservedBy)
}

func TestDuplicateRepository_Patch_OwnerEdit(t *testing.T) {
	repo, mock, db := newTestDuplicateRepo(t)
	defer db.Close()

	qty := 5

	rows := sqlmock.NewRows(duplicateColumns).
		AddRow("id-1", "Susu", "Module de visée", qty, qty, "Natdemon", time.Now())

	mock.ExpectQuery("UPDATE doubles SET").
		WithArgs(qty, qty, "id-1").
		WillReturnRows(rows)

	updated, err := repo.Patch(context.Background(), "id-1", models.DuplicatePatch{
		Total:     &qty,
		Remaining: &qty,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.Total)
	assert.Equal(t, 5, updated.Remaining)
}

func TestDuplicateRepository_Patch_NotFound(t *testing.T) {
	repo, mock, db := newTestDuplicateRepo(t)
	defer db.Close()

	remaining := 1

	mock.ExpectQuery("UPDATE doubles SET").
		WillReturnRows(sqlmock.NewRows(duplicateColumns))

	_, err := repo.Patch(context.Background(), "missing", models.DuplicatePatch{Remaining: &remaining})
	require.ErrorIs(t, err, ErrDuplicateItemNotFound)
}

func TestDuplicateRepository_Patch_EmptyPatch(t *testing.T) {
	repo, _, db := newTestDuplicateRepo(t)
	defer db.Close()

	_, err := repo.Patch(context.Background(), "id-1", models.DuplicatePatch{})
	require.ErrorIs(t, err, ErrEmptyPatch)
}

func TestDuplicateRepository_Delete_NotFound(t *testing.T) {
	repo, mock, db := newTestDuplicateRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM doubles").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(context.Background(), "missing"), ErrDuplicateItemNotFound)
}
