package settings_repo

import (
	"context"
	"errors"

	"plink_backend/internal/model"
	"plink_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table    = "settings"
	colKey   = "key"
	colValue = "value"

	keyThemeMode        = "theme_mode"
	keyDebugMenuEnabled = "debug_menu_enabled"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSettingsRepository(dbc *pgxpool.Pool) repository.SettingsRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) Init(ctx context.Context) error {
	_, err := r.dbc.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS `+table+` (
			`+colKey+` TEXT PRIMARY KEY,
			`+colValue+` BIGINT NOT NULL
		)`)
	return err
}

// ThemeMode - возвращает сохранённую тему. По умолчанию SYSTEM
func (r *repo) ThemeMode(ctx context.Context) (model.ThemeMode, error) {
	v, err := r.get(ctx, keyThemeMode, int64(model.ThemeSystem))
	if err != nil {
		return model.ThemeSystem, err
	}
	return model.ThemeModeFromOrdinal(int(v)), nil
}

func (r *repo) SetThemeMode(ctx context.Context, mode model.ThemeMode) error {
	return r.set(ctx, keyThemeMode, int64(mode))
}

// DebugMenuEnabled - возвращает видимость debug-меню. По умолчанию false
func (r *repo) DebugMenuEnabled(ctx context.Context) (bool, error) {
	v, err := r.get(ctx, keyDebugMenuEnabled, 0)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func (r *repo) SetDebugMenuEnabled(ctx context.Context, enabled bool) error {
	var v int64
	if enabled {
		v = 1
	}
	return r.set(ctx, keyDebugMenuEnabled, v)
}

func (r *repo) get(ctx context.Context, key string, def int64) (int64, error) {
	// Формируем запрос
	query := sq.Select(colValue).
		From(table).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var value int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return def, nil
		}
		return 0, err
	}

	return value, nil
}

func (r *repo) set(ctx context.Context, key string, value int64) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colKey, colValue).
		Values(key, value).
		Suffix("ON CONFLICT (" + colKey + ") DO UPDATE SET " + colValue + " = EXCLUDED." + colValue).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
