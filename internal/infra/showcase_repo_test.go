package infra

import (
	"context"
	"errors"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/Vovarama1992/showcase/internal/domain"
	"github.com/Vovarama1992/showcase/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tsOld = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tsNew = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *PostgresShowcaseRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, &PostgresShowcaseRepo{db: mock}
}

func TestFetchPublicKeepsStoreOrder(t *testing.T) {
	mock, repo := newMockRepo(t)

	rows := pgxmock.NewRows([]string{"id", "video", "gif", "thumbnail", "ts"}).
		AddRow("2", "b.mp4", "b.gif", "b.png", tsNew).
		AddRow("1", "a.mp4", "a.gif", "a.png", tsOld)
	mock.ExpectQuery(regexp.QuoteMeta(queryShowcasePublic)).WillReturnRows(rows)

	items, err := repo.FetchPublic(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.ShowcaseItem{
		{ID: "2", Video: "b.mp4", Gif: "b.gif", Thumbnail: "b.png", Ts: tsNew},
		{ID: "1", Video: "a.mp4", Gif: "a.gif", Thumbnail: "a.png", Ts: tsOld},
	}, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchPublicUsesExplicitProjection(t *testing.T) {
	assert.Contains(t, queryShowcasePublic, "id::text AS id, video, gif, thumbnail, ts")
	assert.NotContains(t, queryShowcasePublic, "*")
	assert.Contains(t, queryShowcasePublic, "ORDER BY ts DESC")
	assert.Contains(t, queryShowcaseAll, "ORDER BY ts DESC")
}

func TestFetchPublicEmptyIsNotNil(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryShowcasePublic)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "video", "gif", "thumbnail", "ts"}))

	items, err := repo.FetchPublic(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFetchAllDropsUnknownColumns(t *testing.T) {
	mock, repo := newMockRepo(t)

	id := uuid.MustParse("6f1c0a52-2f4e-4a3b-9d63-0d3c8e3e9a11")
	rows := pgxmock.NewRows([]string{"id", "video", "gif", "thumbnail", "ts", "parameters", "status"}).
		AddRow([16]byte(id), "b.mp4", "b.gif", "b.png", tsNew, `{"seed":4}`, int32(3)).
		AddRow(int64(1), "a.mp4", nil, "a.png", tsOld, `{"seed":1}`, int32(3))
	mock.ExpectQuery(regexp.QuoteMeta(queryShowcaseAll)).WillReturnRows(rows)

	items, err := repo.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, models.ShowcaseItem{
		ID: id.String(), Video: "b.mp4", Gif: "b.gif", Thumbnail: "b.png", Ts: tsNew,
	}, items[0])
	assert.Equal(t, models.ShowcaseItem{
		ID: "1", Video: "a.mp4", Gif: "", Thumbnail: "a.png", Ts: tsOld,
	}, items[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchAllRejectsBadTimestamp(t *testing.T) {
	mock, repo := newMockRepo(t)

	rows := pgxmock.NewRows([]string{"id", "video", "gif", "thumbnail", "ts"}).
		AddRow("1", "a.mp4", "a.gif", "a.png", "yesterday")
	mock.ExpectQuery(regexp.QuoteMeta(queryShowcaseAll)).WillReturnRows(rows)

	_, err := repo.FetchAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQuery)
}

func TestFetchByID(t *testing.T) {
	mock, repo := newMockRepo(t)

	rows := pgxmock.NewRows([]string{"id", "video", "gif", "thumbnail", "ts"}).
		AddRow("2", "b.mp4", "b.gif", "b.png", tsNew)
	mock.ExpectQuery(regexp.QuoteMeta(queryShowcaseByID)).WithArgs("2").WillReturnRows(rows)

	item, err := repo.FetchByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, &models.ShowcaseItem{ID: "2", Video: "b.mp4", Gif: "b.gif", Thumbnail: "b.png", Ts: tsNew}, item)
}

func TestFetchByIDNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryShowcaseByID)).WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "video", "gif", "thumbnail", "ts"}))

	item, err := repo.FetchByID(context.Background(), "missing")
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchErrorsAreClassified(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"store rejects statement", &pgconn.PgError{Code: "42P01", Message: `relation "showcase" does not exist`}, domain.ErrQuery},
		{"network down", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, domain.ErrConnection},
		{"deadline", context.DeadlineExceeded, domain.ErrConnection},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock, repo := newMockRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta(queryShowcasePublic)).WillReturnError(tc.err)

			items, err := repo.FetchPublic(context.Background())
			assert.Nil(t, items)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
