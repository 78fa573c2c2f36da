package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", *NewDefaultConfig(), false},
		{"json debug", Config{Level: "debug", Format: "json"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger, err := New(NewDefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("logger constructed")
	_ = logger.Sync()
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(&Config{Level: "nope", Format: "console"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging config")
}
