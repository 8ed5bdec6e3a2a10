package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCompatibleVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		worker      string
		coordinator string
		want        bool
		wantErr     bool
	}{
		{"same", "v1.0.0", "v1.0.0", true, false},
		{"minor differs", "v1.3.0", "v1.0.0", true, false},
		{"patch differs", "v1.0.9", "v1.0.0", true, false},
		{"major differs", "v2.0.0", "v1.0.0", false, false},
		{"invalid worker", "1.0.0", "v1.0.0", false, true},
		{"invalid coordinator", "v1.0.0", "latest", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := IsCompatibleVersion(tt.worker, tt.coordinator)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckVersion(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckVersion(Version, Version))
	assert.ErrorIs(t, CheckVersion("v9.0.0", Version), ErrIncompatibleVersion)
	assert.ErrorIs(t, CheckVersion("", Version), ErrIncompatibleVersion)
}
