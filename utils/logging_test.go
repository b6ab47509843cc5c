package utils

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalDevHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(LocalDevHandlerOptions{}.NewLocalDevHandler(&buf))

	logger.With(slog.String("facility", "southside")).Info("facility opened", slog.Int("open_times", 3))

	out := buf.String()
	assert.Contains(t, out, "INFO facility opened")
	assert.Contains(t, out, "facility=southside")
	assert.Contains(t, out, "open_times=3")
	assert.NotContains(t, out, "msg=")
}
