package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsync/attendance-backend-go/internal/domain/attendance"
	"github.com/staffsync/attendance-backend-go/internal/domain/wfh"
	"github.com/staffsync/attendance-backend-go/internal/pkg/database"
)

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "concurrent modification maps to conflict",
			err:        attendance.ErrConcurrentModification,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "wrapped concurrent modification still maps to conflict",
			err:        fmt.Errorf("failed to complete check-out: %w", attendance.ErrConcurrentModification),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "store unavailable maps to service unavailable",
			err:        database.ErrUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "STORE_UNAVAILABLE",
		},
		{
			name:       "wrapped store unavailable still maps to service unavailable",
			err:        fmt.Errorf("failed to query attendance: %w", database.ErrUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "STORE_UNAVAILABLE",
		},
		{
			name:       "already checked in maps to conflict",
			err:        attendance.ErrAlreadyCheckedIn,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "duplicate wfh request maps to conflict",
			err:        wfh.ErrDuplicateRequest,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "unknown error maps to internal server error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, c.wantCode, body.Error.Code)
		})
	}
}
