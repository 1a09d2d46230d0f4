package dsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		comma   rune
		wantErr bool
	}{
		{"comma", ',', false},
		{"semicolon", ';', false},
		{"tab", '\t', false},
		{"pipe", '|', false},
		{"multibyte", '§', false},
		{"zero", 0, true},
		{"quote", '"', true},
		{"newline", '\n', true},
		{"carriage return", '\r', true},
		{"replacement char", '�', true},
		{"invalid rune", rune(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Options{Comma: tt.comma}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, ',', opts.Comma)
	assert.NoError(t, opts.Validate())
}

func TestOptionsError_Message(t *testing.T) {
	err := Options{Comma: '"'}.Validate()
	assert.EqualError(t, err, "dsv: invalid Comma: invalid separator")
}
