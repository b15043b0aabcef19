package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_Get(t *testing.T) {
	tests := []struct {
		name      string
		mock      func(mock sqlmock.Sqlmock)
		wantValue string
		wantOK    bool
		wantErr   bool
	}{
		{
			name: "present key",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetValue)).
					WithArgs("events").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"e1"}]`))
			},
			wantValue: `[{"id":"e1"}]`,
			wantOK:    true,
		},
		{
			name: "absent key is not an error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetValue)).
					WithArgs("events").
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
			wantOK: false,
		},
		{
			name: "query failure surfaces",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetValue)).
					WithArgs("events").
					WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tc.mock(mock)

			s := newSQLiteStoreWithDB(db)
			value, ok, err := s.Get(context.Background(), "events")
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantOK, ok)
				require.Equal(t, tc.wantValue, value)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLiteStore_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(querySetValue)).
		WithArgs("events", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := newSQLiteStoreWithDB(db)
	require.NoError(t, s.Set(context.Background(), "events", `[]`))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SetError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(querySetValue)).
		WithArgs("events", `[]`).
		WillReturnError(errors.New("database is locked"))

	s := newSQLiteStoreWithDB(db)
	err = s.Set(context.Background(), "events", `[]`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "database is locked")
	require.NoError(t, mock.ExpectationsWereMet())
}
