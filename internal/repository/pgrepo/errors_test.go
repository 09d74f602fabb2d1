package pgrepo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertErr(t *testing.T) {
	require.NoError(t, convertErr(nil, "noop"))

	cases := []struct {
		name    string
		err     error
		wantErr error
		wantMsg string
	}{
		{
			name:    "no rows",
			err:     pgx.ErrNoRows,
			wantErr: domain.ErrRecordNotFound,
			wantMsg: "[repository/finding customer 5] record not found",
		},
		{
			name:    "wrapped no rows",
			err:     fmt.Errorf("scan: %w", pgx.ErrNoRows),
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name:    "unique violation",
			err:     &pgconn.PgError{Code: uniqueViolationCode, Message: "duplicate"},
			wantErr: domain.ErrDuplicateKey,
		},
		{
			name:    "foreign key violation",
			err:     &pgconn.PgError{Code: foreignKeyViolationCode, Message: "fk"},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name:    "other pg error",
			err:     &pgconn.PgError{Code: "23514", Message: "check"},
			wantErr: domain.ErrUnknown,
		},
		{
			name:    "plain error",
			err:     errors.New("boom"),
			wantErr: domain.ErrUnknown,
			wantMsg: "[repository/finding customer 5] unknown error: boom",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := convertErr(tt.err, "finding customer %d", 5)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}
