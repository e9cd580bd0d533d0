// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jessleroux/pigeon-raiders/models"
)

const (
	listRequests = `SELECT id, joueur, objet, quantite, statut, valide_par, created_at
    FROM demandes
    ORDER BY created_at DESC;`

	insertRequest = `INSERT INTO demandes (id, joueur, objet, quantite, statut)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, joueur, objet, quantite, statut, valide_par, created_at;`

	deleteRequest = `DELETE FROM demandes
    WHERE id = $1;`

	listDuplicates = `SELECT id, joueur, objet, quantite_total, restant, reserved_by, created_at
    FROM doubles
    ORDER BY created_at DESC;`

	insertDuplicate = `INSERT INTO doubles (id, joueur, objet, quantite_total, restant)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, joueur, objet, quantite_total, restant, reserved_by, created_at;`

	deleteDuplicate = `DELETE FROM doubles
    WHERE id = $1;`
)

// buildRequestPatch assembles a partial UPDATE for the demandes table.
// Only non-nil patch fields become SET clauses; the statement returns the
// full updated row. There is deliberately no version predicate: concurrent
// patches last-write-win, matching the backend the app was built against.
func buildRequestPatch(id string, patch models.RequestPatch) (string, []any, error) {
	if patch.Status == nil && patch.ValidatedBy == nil {
		return "", nil, ErrEmptyPatch
	}

	b := sq.Update("demandes").PlaceholderFormat(sq.Dollar)
	if patch.Status != nil {
		b = b.Set("statut", *patch.Status)
	}
	if patch.ValidatedBy != nil {
		b = b.Set("valide_par", *patch.ValidatedBy)
	}

	query, args, err := b.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, joueur, objet, quantite, statut, valide_par, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDuplicatePatch assembles a partial UPDATE for the doubles table.
// The reserve path writes restant and reserved_by together; the owner edit
// path writes quantite_total and restant together.
func buildDuplicatePatch(id string, patch models.DuplicatePatch) (string, []any, error) {
	if patch.Total == nil && patch.Remaining == nil && patch.ReservedBy == nil {
		return "", nil, ErrEmptyPatch
	}

	b := sq.Update("doubles").PlaceholderFormat(sq.Dollar)
	if patch.Total != nil {
		b = b.Set("quantite_total", *patch.Total)
	}
	if patch.Remaining != nil {
		b = b.Set("restant", *patch.Remaining)
	}
	if patch.ReservedBy != nil {
		b = b.Set("reserved_by", *patch.ReservedBy)
	}

	query, args, err := b.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, joueur, objet, quantite_total, restant, reserved_by, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
