package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/yumegusa/nekotoki/internal/models"
	"github.com/yumegusa/nekotoki/internal/util"
)

// builtinBackgrounds are seeded on first open. The lavender/cream palette
// is the app's signature look; the others give a plain dark and a light
// option out of the box.
var builtinBackgrounds = []models.BackgroundPreset{
	{Name: "lavender", Color: "#9295c4", StarColor: "#ebe29b"},
	{Name: "night", Color: "#1a1b26", StarColor: "#c0caf5"},
	{Name: "paper", Color: "#f5f0e1", StarColor: "#b0b3e2"},
}

func (d *Database) seedBuiltinBackgrounds(ctx context.Context) error {
	for _, bg := range builtinBackgrounds {
		_, err := d.DB.ExecContext(ctx,
			"INSERT OR IGNORE INTO backgrounds (name, color, star_color, builtin) VALUES (?, ?, ?, 1)",
			bg.Name, bg.Color, bg.StarColor)
		if err != nil {
			return wrapBackgroundErr("seed", 0, err)
		}
	}
	return nil
}

// GetBackgrounds returns all presets, builtins first, then user presets in
// creation order.
func (d *Database) GetBackgrounds(ctx context.Context) ([]models.BackgroundPreset, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, name, color, star_color, builtin, created_at
		FROM backgrounds
		ORDER BY builtin DESC, id ASC`)
	if err != nil {
		return nil, wrapBackgroundErr("list", 0, err)
	}
	defer rows.Close()

	var presets []models.BackgroundPreset
	for rows.Next() {
		var p models.BackgroundPreset
		var builtin int
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &p.StarColor, &builtin, &p.CreatedAt); err != nil {
			return nil, wrapBackgroundErr("list", 0, err)
		}
		p.Builtin = util.IntToBool(builtin)
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapBackgroundErr("list", 0, err)
	}
	return presets, nil
}

// GetBackgroundByName looks up a single preset.
func (d *Database) GetBackgroundByName(ctx context.Context, name string) (models.BackgroundPreset, error) {
	var p models.BackgroundPreset
	var builtin int
	err := d.DB.QueryRowContext(ctx, `
		SELECT id, name, color, star_color, builtin, created_at
		FROM backgrounds WHERE name = ?`, name).
		Scan(&p.ID, &p.Name, &p.Color, &p.StarColor, &builtin, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return p, wrapBackgroundErr("get", 0, ErrPresetNotFound)
	}
	if err != nil {
		return p, wrapBackgroundErr("get", 0, err)
	}
	p.Builtin = util.IntToBool(builtin)
	return p, nil
}

// AddBackground creates a user preset. Names are normalized to lowercase.
func (d *Database) AddBackground(ctx context.Context, name, color, starColor string) (int64, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	var exists int
	if err := d.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM backgrounds WHERE name = ?", name).Scan(&exists); err != nil {
		return 0, wrapBackgroundErr("add", 0, err)
	}
	if exists > 0 {
		return 0, wrapBackgroundErr("add", 0, ErrPresetExists)
	}

	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO backgrounds (name, color, star_color, builtin) VALUES (?, ?, ?, 0)",
		name, color, starColor)
	if err != nil {
		return 0, wrapBackgroundErr("add", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapBackgroundErr("add", 0, err)
	}
	return id, nil
}

// DeleteBackground removes a user preset. Builtins are immutable.
func (d *Database) DeleteBackground(ctx context.Context, id int64) error {
	var builtin int
	err := d.DB.QueryRowContext(ctx, "SELECT builtin FROM backgrounds WHERE id = ?", id).Scan(&builtin)
	if errors.Is(err, sql.ErrNoRows) {
		return wrapBackgroundErr("delete", id, ErrPresetNotFound)
	}
	if err != nil {
		return wrapBackgroundErr("delete", id, err)
	}
	if util.IntToBool(builtin) {
		return wrapBackgroundErr("delete", id, ErrPresetBuiltin)
	}
	_, err = d.DB.ExecContext(ctx, "DELETE FROM backgrounds WHERE id = ?", id)
	return wrapBackgroundErr("delete", id, err)
}
