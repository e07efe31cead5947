// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"

	"github.com/pdiddy/photopdf/pkg/types"
)

const defaultListLimit = 20

// Record appends a finished conversion to the history. Results without an
// ID are given one.
func (s *Store) Record(ctx context.Context, r types.ConversionResult) (types.ConversionResult, error) {
	if r.ID == "" {
		r.ID = shortuuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (id, path, pages, bytes, page_size, orientation, fit, margin, base_name, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Path, r.Pages, r.Bytes,
		string(r.Options.PageSize), string(r.Options.Orientation), string(r.Options.Fit),
		r.Options.Margin, r.Options.BaseName,
		r.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return r, fmt.Errorf("recording conversion: %w", err)
	}
	return r, nil
}

// List returns up to limit conversions, newest first. limit <= 0 uses the
// default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]types.ConversionResult, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, path, pages, bytes, page_size, orientation, fit, margin, base_name, created_at
		 FROM conversions ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing conversions: %w", err)
	}
	defer rows.Close()

	var out []types.ConversionResult
	for rows.Next() {
		var (
			r                      types.ConversionResult
			size, orientation, fit string
			baseName, createdAt    string
		)
		if err := rows.Scan(&r.ID, &r.Path, &r.Pages, &r.Bytes, &size, &orientation, &fit,
			&r.Options.Margin, &baseName, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		r.Options.PageSize = types.PageSize(size)
		r.Options.Orientation = types.Orientation(orientation)
		r.Options.Fit = types.ImageFit(fit)
		r.Options.BaseName = baseName
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, r)
	}
	return out, rows.Err()
}
