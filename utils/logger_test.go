package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Library consumers may never call InitLogger; logging must still work.
func TestLoggersUsableWithoutInit(t *testing.T) {
	require.NotNil(t, InfoLogger)
	require.NotNil(t, ErrorLogger)

	var buf bytes.Buffer
	ErrorLogger.SetOutput(&buf)
	defer InitLogger()

	ErrorLogger.Errorf("snapshot write failed")
	assert.Contains(t, buf.String(), "snapshot write failed")
}
