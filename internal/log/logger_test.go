package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger.Out
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(prev) })
	return &buf
}

func TestDebugLevelToggle(t *testing.T) {
	buf := capture(t)

	SetDebug(false)
	Debugf("hidden %s", "message")
	assert.Empty(t, buf.String(), "debug output suppressed at info level")

	SetDebug(true)
	defer SetDebug(false)
	Debugf("shown %s", "message")
	assert.Contains(t, buf.String(), "shown message")
}

func TestLevelsAndFields(t *testing.T) {
	buf := capture(t)

	Infof("starting session")
	assert.Contains(t, buf.String(), "starting session")
	buf.Reset()

	Warnf("menu exited with code %d", 1)
	assert.Contains(t, buf.String(), "code 1")
	buf.Reset()

	WithField("channel", "alpha").Info("playing")
	assert.Contains(t, buf.String(), "channel=alpha")
}

func TestDefaultLevelIsInfo(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
