package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/arcigy/coldlead/mock"
	coldslog "github.com/arcigy/coldlead/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs success at debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		html, err := coldslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://okna-novak.sk")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, `msg="fetch website"`)
		assert.Contains(t, output, "url=https://okna-novak.sk")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("hides success at default level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html></html>", nil
			},
		}

		_, err := coldslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://okna-novak.sk")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("logs failure at warn", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("network error")
			},
		}

		_, err := coldslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://okna-novak.sk")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, `err="network error"`)
	})
}
