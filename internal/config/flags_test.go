package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		wantRest []string
		check    func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name:     "no flags",
			args:     nil,
			wantRest: nil,
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name:     "all flags",
			args:     []string{"-d", "v.db", "-m", "m.json", "-l", "v.log", "-password-length", "30", "-kdf-time", "2", "-kdf-memory", "4096", "-kdf-threads", "1", "add"},
			wantRest: []string{"add"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "v.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "m.json", cfg.Storage.MasterFile)
				assert.Equal(t, "v.log", cfg.Log.File)
				assert.Equal(t, 30, cfg.App.PasswordLength)
				assert.Equal(t, uint32(2), cfg.KDF.Time)
				assert.Equal(t, uint32(4096), cfg.KDF.Memory)
				assert.Equal(t, uint8(1), cfg.KDF.Threads)
			},
		},
		{
			name:     "config alias",
			args:     []string{"-config", "cfg.json", "list"},
			wantRest: []string{"list"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "cfg.json", cfg.JSONFilePath)
			},
		},
		{
			name:    "threads overflow",
			args:    []string{"-kdf-threads", "300"},
			wantErr: true,
		},
		{
			name:    "not a number",
			args:    []string{"-password-length", "long"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, rest, err := ParseFlags(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRest, rest)
			tt.check(t, cfg)
		})
	}
}
