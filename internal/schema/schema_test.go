package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_Validate(t *testing.T) {
	sch := Schema{
		Required: []string{"id", "name"},
		Fields: map[string]Kind{
			"name":  KindString,
			"stock": KindNumber,
			"flags": KindObject,
		},
	}

	tests := []struct {
		name    string
		doc     map[string]any
		wantErr string
	}{
		{
			name: "valid document",
			doc:  map[string]any{"id": "p-1", "name": "Rice 5kg", "stock": 12.0},
		},
		{
			name: "undeclared fields pass through",
			doc:  map[string]any{"id": "p-1", "name": "Rice 5kg", "note": "anything"},
		},
		{
			name:    "missing required field",
			doc:     map[string]any{"id": "p-1"},
			wantErr: `missing required field "name"`,
		},
		{
			name:    "null required field",
			doc:     map[string]any{"id": "p-1", "name": nil},
			wantErr: `required field "name" is null`,
		},
		{
			name:    "null declared field",
			doc:     map[string]any{"id": "p-1", "name": "Rice", "stock": nil},
			wantErr: `field "stock" is null, expected number`,
		},
		{
			name:    "wrong type",
			doc:     map[string]any{"id": "p-1", "name": "Rice", "stock": "twelve"},
			wantErr: `field "stock" has type string, expected number`,
		},
		{
			name: "integer counts as number",
			doc:  map[string]any{"id": "p-1", "name": "Rice", "stock": 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sch.Validate(tt.doc)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "any", KindAny.String())
}
