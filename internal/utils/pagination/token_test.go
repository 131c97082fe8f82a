package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	cursor := Cursor{
		TransactionDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		CreatedAt:       time.Date(2025, 3, 15, 14, 30, 45, 123456789, time.UTC),
		EntryID:         "5b0c6a9e-2f7d-4c59-9a1e-0d3f6f0e8c11",
	}

	token := EncodeCursor(cursor)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "+", "token must be safe in a query string")
	assert.NotContains(t, token, "/", "token must be safe in a query string")

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)
}

func TestEncodeCursor_NormalisesToUTC(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	created := time.Date(2025, 3, 15, 21, 0, 0, 0, jakarta)

	decoded, err := DecodeCursor(EncodeCursor(Cursor{TransactionDate: created, CreatedAt: created, EntryID: "e-1"}))

	require.NoError(t, err)
	assert.True(t, created.Equal(decoded.CreatedAt))
	assert.Equal(t, time.UTC, decoded.CreatedAt.Location())
}

func TestDecodeCursorError(t *testing.T) {
	encode := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name    string
		token   string
		wantMsg string
	}{
		{name: "not base64", token: "this is not base64!", wantMsg: "base64 decode"},
		{name: "missing fields", token: encode("2025-03-14T00:00:00Z"), wantMsg: "split"},
		{name: "empty entry id", token: encode("2025-03-14T00:00:00Z|2025-03-14T00:00:00Z|"), wantMsg: "split"},
		{name: "bad date", token: encode("notadate|2025-03-14T00:00:00Z|e-1"), wantMsg: "transaction date parse"},
		{name: "bad created at", token: encode("2025-03-14T00:00:00Z|yesterday|e-1"), wantMsg: "created_at parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.token)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
