package pure_utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNullTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Null[time.Time]
		wantErr bool
	}{
		{
			name:  "null value",
			input: "null",
			want:  Null[time.Time]{Valid: false, Set: true},
		},
		{
			name:  "valid time",
			input: `"2024-01-01T08:00:00Z"`,
			want: Null[time.Time]{
				value: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
				Valid: true,
				Set:   true,
			},
		},
		{
			name:    "invalid time format",
			input:   `"next monday"`,
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			input:   "invalid",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Null[time.Time]
			err := got.UnmarshalJSON([]byte(tt.input))

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.want.value.Equal(got.value))
				assert.Equal(t, tt.want.Valid, got.Valid)
				assert.Equal(t, tt.want.Set, got.Set)
			}
		})
	}
}

func TestNullObject_UnmarshalJSON(t *testing.T) {
	type input struct {
		Int Null[int] `json:"int"`
	}

	tests := []struct {
		name    string
		input   string
		raw     int
		want    input
		wantErr bool
		wantNil bool
	}{
		{
			name:  "provided value",
			raw:   42,
			input: `{"int": 42}`,
			want:  input{Int: Null[int]{value: 42, Valid: true, Set: true}},
		},
		{
			name:    "omitted value",
			input:   `{}`,
			want:    input{Int: Null[int]{}},
			wantNil: true,
		},
		{
			name:    "null value",
			input:   `{"int": null}`,
			want:    input{Int: Null[int]{Set: true}},
			wantNil: true,
		},
		{
			name:    "invalid value",
			input:   `{"int": "hello"}`,
			want:    input{Int: Null[int]{Set: true}},
			wantErr: true,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got input
			err := json.Unmarshal([]byte(tt.input), &got)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.want, got)

			if tt.wantNil {
				assert.Equal(t, 0, got.Int.Value())
				assert.Nil(t, got.Int.Ptr())
			} else {
				assert.Equal(t, tt.raw, got.Int.Value())
				assert.Equal(t, tt.raw, *got.Int.Ptr())
			}
		})
	}
}

func TestNull_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Null[int]{Set: true})
	assert.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = json.Marshal(NullFrom("coffee"))
	assert.NoError(t, err)
	assert.Equal(t, `"coffee"`, string(b))
}
