package buffer_test

import (
	"bytes"
	"testing"

	"github.com/MasterOfBinary/splitbatch/buffer"
	"github.com/MasterOfBinary/splitbatch/spliterator"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", buffer.LogLevelDebug.String())
	require.Equal(t, "INFO", buffer.LogLevelInfo.String())
	require.Equal(t, "WARN", buffer.LogLevelWarn.String())
	require.Equal(t, "ERROR", buffer.LogLevelError.String())
	require.Equal(t, "UNKNOWN", buffer.LogLevel(42).String())
}

func newTestLogger(level log.Level) (*buffer.CharmLogger, *bytes.Buffer) {
	var output bytes.Buffer
	return buffer.NewCharmLogger(log.NewWithOptions(&output, log.Options{Level: level})), &output
}

func TestCharmLogger(t *testing.T) {
	t.Run("formats messages", func(t *testing.T) {
		logger, output := newTestLogger(log.DebugLevel)
		logger.Info("Produced %d groups", 3)
		require.Contains(t, output.String(), "Produced 3 groups")
	})

	t.Run("filters by level", func(t *testing.T) {
		logger, output := newTestLogger(log.WarnLevel)
		logger.Debug("hidden")
		logger.Info("hidden")
		require.Empty(t, output.String())

		logger.Log(buffer.LogLevelError, "shown %s", "error")
		require.Contains(t, output.String(), "shown error")
	})

	t.Run("adjusted configuration is reported", func(t *testing.T) {
		logger, output := newTestLogger(log.WarnLevel)
		_, err := buffer.New(spliterator.FromSlice(sequence(3)), &buffer.Options{
			Config: buffer.NewConstantConfig(&buffer.ConfigValues{MinSize: 8, PreferredLength: 4}),
			Logger: logger,
		})
		require.NoError(t, err)
		require.Contains(t, output.String(), "MinSize 8 exceeds PreferredLength 4, reducing MinSize to 4")
	})

	t.Run("split attempts are reported", func(t *testing.T) {
		logger, output := newTestLogger(log.DebugLevel)
		s, err := buffer.New(spliterator.Range(0, 10), &buffer.Options{
			Config: buffer.NewConstantConfig(&buffer.ConfigValues{MinSize: 1, PreferredLength: 5}),
			Logger: logger,
		})
		require.NoError(t, err)

		prefix, err := s.TrySplit()
		require.NoError(t, err)
		require.Nil(t, prefix)
		require.Contains(t, output.String(), "Not splitting source with an estimated 10 elements")
	})
}

func TestNoOpLogger(t *testing.T) {
	var logger buffer.Logger = &buffer.NoOpLogger{}
	logger.Log(buffer.LogLevelError, "ignored %d", 1)
	logger.Debug("ignored")
	logger.Info("ignored")
	logger.Warn("ignored")
	logger.Error("ignored")
}
