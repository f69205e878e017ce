package infra

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/Vovarama1992/showcase/internal/domain"
	"github.com/Vovarama1992/showcase/internal/models"
	"github.com/Vovarama1992/showcase/internal/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	queryShowcaseAll    = `SELECT * FROM showcase ORDER BY ts DESC`
	queryShowcasePublic = `SELECT id::text AS id, video, gif, thumbnail, ts FROM showcase ORDER BY ts DESC`
	queryShowcaseByID   = `SELECT id::text AS id, video, gif, thumbnail, ts FROM showcase WHERE id::text = $1 ORDER BY ts DESC LIMIT 1`
)

// Querier is the part of *pgxpool.Pool the repo needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresShowcaseRepo struct {
	db Querier
}

func NewPostgresShowcaseRepo(db Querier) ports.ShowcaseRepository {
	return &PostgresShowcaseRepo{db: db}
}

func (r *PostgresShowcaseRepo) FetchAll(ctx context.Context) ([]models.ShowcaseItem, error) {
	rows, err := r.db.Query(ctx, queryShowcaseAll)
	if err != nil {
		return nil, wrapStoreErr("fetch all showcase", err)
	}

	items, err := pgx.CollectRows(rows, rowToItemByColumn)
	if err != nil {
		return nil, wrapStoreErr("fetch all showcase", err)
	}
	return items, nil
}

func (r *PostgresShowcaseRepo) FetchPublic(ctx context.Context) ([]models.ShowcaseItem, error) {
	rows, err := r.db.Query(ctx, queryShowcasePublic)
	if err != nil {
		return nil, wrapStoreErr("fetch public showcase", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ShowcaseItem])
	if err != nil {
		return nil, wrapStoreErr("fetch public showcase", err)
	}
	return items, nil
}

func (r *PostgresShowcaseRepo) FetchByID(ctx context.Context, id string) (*models.ShowcaseItem, error) {
	rows, err := r.db.Query(ctx, queryShowcaseByID, id)
	if err != nil {
		return nil, wrapStoreErr("fetch showcase by id", err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.ShowcaseItem])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("fetch showcase by id %q: %w", id, domain.ErrNotFound)
		}
		return nil, wrapStoreErr("fetch showcase by id", err)
	}
	return item, nil
}

// rowToItemByColumn picks the known columns out of a SELECT * row and drops
// everything else the table may grow.
func rowToItemByColumn(row pgx.CollectableRow) (models.ShowcaseItem, error) {
	var item models.ShowcaseItem

	values, err := row.Values()
	if err != nil {
		return item, err
	}

	for i, fd := range row.FieldDescriptions() {
		if i >= len(values) {
			break
		}
		v := values[i]

		switch fd.Name {
		case "id":
			item.ID = idString(v)
		case "video":
			item.Video = textValue(v)
		case "gif":
			item.Gif = textValue(v)
		case "thumbnail":
			item.Thumbnail = textValue(v)
		case "ts":
			ts, ok := v.(time.Time)
			if !ok && v != nil {
				return item, fmt.Errorf("column ts: unexpected type %T", v)
			}
			item.Ts = ts
		}
	}

	return item, nil
}

func idString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case [16]byte:
		return uuid.UUID(id).String()
	case int64:
		return strconv.FormatInt(id, 10)
	case int32:
		return strconv.FormatInt(int64(id), 10)
	case int16:
		return strconv.FormatInt(int64(id), 10)
	case int:
		return strconv.Itoa(id)
	default:
		return fmt.Sprint(id)
	}
}

func textValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(s)
	}
}

// wrapStoreErr tags err with ErrConnection or ErrQuery.
func wrapStoreErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, classifyStoreErr(err), err)
}

func classifyStoreErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return domain.ErrQuery
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return domain.ErrConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrConnection
	}

	return domain.ErrQuery
}
