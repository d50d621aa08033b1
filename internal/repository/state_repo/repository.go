package state_repo

import (
	"context"
	"errors"
	"sort"

	"plink_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table    = "game_state"
	colKey   = "key"
	colValue = "value"
)

type repo struct {
	dbc      *pgxpool.Pool
	getter   *trmpgx.CtxGetter
	defaults map[string]int64
}

func NewStateRepository(dbc *pgxpool.Pool, defaults map[string]int64) repository.StateRepository {
	return &repo{
		dbc:      dbc,
		getter:   trmpgx.DefaultCtxGetter,
		defaults: defaults,
	}
}

// Init создаёт таблицу и заводит строку под каждый известный ключ. Строки
// обязаны существовать всегда: FOR UPDATE не блокирует отсутствующие строки,
// и без них два конкурентных начисления теряли бы одно из двух.
func (r *repo) Init(ctx context.Context) error {
	_, err := r.dbc.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS `+table+` (
			`+colKey+` TEXT PRIMARY KEY,
			`+colValue+` BIGINT NOT NULL
		)`)
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(colKey, colValue).
		Suffix("ON CONFLICT (" + colKey + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)
	for _, key := range r.sortedDefaultKeys() {
		query = query.Values(key, r.defaults[key])
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	return err
}

func (r *repo) sortedDefaultKeys() []string {
	keys := make([]string, 0, len(r.defaults))
	for key := range r.defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot - читает все пары ключ/значение. Внутри транзакции строки
// блокируются (FOR UPDATE), поэтому конкурирующие транзакции выполняются
// последовательно.
func (r *repo) Snapshot(ctx context.Context) (map[string]int64, error) {
	// Формируем запрос
	query := sq.Select(colKey, colValue).
		From(table).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	kv := make(map[string]int64)
	for rows.Next() {
		var key string
		var value int64
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		kv[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return kv, nil
}

// Get - возвращает значение ключа. Возвращает 0, если записи нет
func (r *repo) Get(ctx context.Context, key string) (int64, error) {
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
			return 0, nil
		}
		return 0, err
	}

	return value, nil
}

// Set - записывает значение ключа, создавая запись при необходимости
func (r *repo) Set(ctx context.Context, key string, value int64) error {
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

// Clear - сбрасывает все ключи на значения по умолчанию (используется при
// сбросе игры). Строки не удаляются, чтобы им всегда было что блокировать
func (r *repo) Clear(ctx context.Context) error {
	query := sq.Insert(table).
		Columns(colKey, colValue).
		Suffix("ON CONFLICT (" + colKey + ") DO UPDATE SET " + colValue + " = EXCLUDED." + colValue).
		PlaceholderFormat(sq.Dollar)
	for _, key := range r.sortedDefaultKeys() {
		query = query.Values(key, r.defaults[key])
	}

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
