package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/dmv-records-api/models"
)

func TestRoles_Scan(t *testing.T) {
	var r models.Roles
	require.NoError(t, r.Scan(`[{"id":"111","name":"LEO"},{"id":"222"}]`))
	assert.Len(t, r, 2)
	assert.Contains(t, r.IDs(), "111")
	assert.Contains(t, r.IDs(), "222")

	require.NoError(t, r.Scan([]byte(`[]`)))
	assert.Empty(t, r)

	require.NoError(t, r.Scan(nil))
	assert.Empty(t, r)

	assert.Error(t, r.Scan(`not json`))
	assert.Error(t, r.Scan(42))
}

func TestRoles_Value(t *testing.T) {
	v, err := models.Roles(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = models.Roles{{ID: "111", Name: "LEO"}}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"111","name":"LEO"}]`, v.(string))
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.Amount
		err  bool
	}{
		{name: "string", body: `{"fine_amount":"49.99"}`, want: "49.99"},
		{name: "number", body: `{"fine_amount":49.99}`, want: "49.99"},
		{name: "integer", body: `{"fine_amount":250}`, want: "250"},
		{name: "null", body: `{"fine_amount":null}`, want: ""},
		{name: "omitted", body: `{}`, want: ""},
		{name: "object", body: `{"fine_amount":{}}`, err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in struct {
				FineAmount models.Amount `json:"fine_amount"`
			}
			err := json.Unmarshal([]byte(tt.body), &in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, in.FineAmount)
		})
	}
}
