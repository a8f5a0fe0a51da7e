package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name       string
		ctx        context.Context
		wantUserID int64
		wantOk     bool
	}{
		{
			name:       "user ID present",
			ctx:        context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
			wantUserID: 42,
			wantOk:     true,
		},
		{
			name:   "user ID missing",
			ctx:    context.Background(),
			wantOk: false,
		},
		{
			name:   "wrong value type",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, "42"),
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)

			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantUserID, userID)
		})
	}
}

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}
