package cli

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestHumanReadableLoggingEnabled(t *testing.T) {
	testCases := []struct {
		name           string
		logFormat      string
		expectedResult bool
	}{
		{name: "console_format", logFormat: "console", expectedResult: true},
		{name: "console_format_mixed_case", logFormat: " Console ", expectedResult: true},
		{name: "structured_format", logFormat: "structured", expectedResult: false},
		{name: "blank_format", logFormat: "", expectedResult: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			application := &Application{}
			application.configuration.Common.LogFormat = testCase.logFormat
			require.Equal(t, testCase.expectedResult, application.humanReadableLoggingEnabled())
		})
	}
}

func TestSyncLoggerInstanceToleratesUnsupportedSink(t *testing.T) {
	application := &Application{}

	require.NoError(t, application.syncLoggerInstance(nil))

	unsupportedSyncCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(failingSyncWriter{failure: syscall.ENOTSUP}),
		zapcore.InfoLevel,
	)
	require.NoError(t, application.syncLoggerInstance(zap.New(unsupportedSyncCore)))
}

type failingSyncWriter struct {
	failure error
}

func (writer failingSyncWriter) Write(data []byte) (int, error) {
	return len(data), nil
}

func (writer failingSyncWriter) Sync() error {
	return writer.failure
}
