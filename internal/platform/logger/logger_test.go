package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "actionkernel/pkg/domain-errors"
)

func TestNew(t *testing.T) {
	t.Run("json at info drops debug", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New(&buf, "info", "json")
		require.NoError(t, err)

		log.Debug("hidden")
		log.Info("shown", "k", "v")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.Contains(t, buf.String(), `"k":"v"`)
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New(&buf, "DEBUG", "text")
		require.NoError(t, err)

		log.Debug("visible")
		assert.Contains(t, buf.String(), "msg=visible")
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, "loud", "json")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

		_, err = New(&bytes.Buffer{}, "info", "xml")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}
