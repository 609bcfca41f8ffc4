package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   Config
		wantErr string
	}{
		{
			name:  "valid config passes through",
			input: Config{Inputs: []string{"."}, OutputPath: "report.html"},
		},
		{
			name:    "missing inputs",
			input:   Config{OutputPath: "report.html"},
			wantErr: "Inputs is a required configuration field",
		},
		{
			name:    "missing output path",
			input:   Config{Inputs: []string{"."}},
			wantErr: "OutputPath is a required configuration field",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewConfig(tc.input)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, tc.input.Inputs, cfg.Inputs)
			assert.Equal(t, tc.input.OutputPath, cfg.OutputPath)
		})
	}
}
