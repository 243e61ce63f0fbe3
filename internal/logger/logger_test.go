package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	t.Run("user and request id are attached", func(t *testing.T) {
		hook.Reset()
		ctx := ContextWithRequestID(ContextWithUser(context.Background(), "user-1"), "req-9")

		WithContext(ctx).WithField("document_id", "doc-1").Info("synced")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, "synced", entry.Message)
		assert.Equal(t, "user-1", entry.Data["user"])
		assert.Equal(t, "req-9", entry.Data["request_id"])
		assert.Equal(t, "doc-1", entry.Data["document_id"])
	})

	t.Run("anonymous context", func(t *testing.T) {
		hook.Reset()

		WithContext(context.Background()).WithError(errors.New("boom")).Warn("remote delete failed")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "unknown", entry.Data["user"])
		assert.NotContains(t, entry.Data, "request_id")
		assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "boom")
	})
}
