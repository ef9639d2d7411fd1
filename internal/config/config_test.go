package config

import (
	"testing"

	"github.com/qdm12/log"
	"github.com/stretchr/testify/assert"
)

func Test_Config_String(t *testing.T) {
	t.Parallel()

	var defaultConfig Config
	defaultConfig.SetDefaults()

	s := defaultConfig.String()

	const expected = `Settings summary:
├── HTTP client
|   └── Timeout: 10s
├── IP API
|   └── Base URL: http://ip-api.com
├── Rate limit
|   ├── Limit: 10 calls
|   └── Window: 1m0s
├── Reverse DNS
|   ├── Nameserver: 1.1.1.1:53
|   └── Timeout: 3s
├── Server
|   └── Listening address: :8000
├── Health
|   └── Server address: 127.0.0.1:9999
├── Paths
|   └── Data directory: ./data
├── Persist
|   └── Period: 1m0s
├── Backup: disabled
├── Logger
|   ├── Caller: no
|   └── Level: INFO
└── Notifications: disabled`
	assert.Equal(t, expected, s)
}

func Test_Config_Validate(t *testing.T) {
	t.Parallel()

	var config Config
	config.SetDefaults()

	assert.NoError(t, config.Validate())
}

func Test_parseLogLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		level      log.Level
		errMessage string
	}{
		"debug":     {s: "debug", level: log.LevelDebug},
		"info":      {s: "info", level: log.LevelInfo},
		"warning":   {s: "warning", level: log.LevelWarn},
		"error":     {s: "error", level: log.LevelError},
		"uppercase": {s: "INFO", level: log.LevelInfo},
		"unknown": {
			s: "trace",
			errMessage: `log level is unknown: "trace" is not valid ` +
				`and can be one of debug, info, warning or error`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			level, err := parseLogLevel(testCase.s)

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.level, level)
		})
	}
}
