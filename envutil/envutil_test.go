package envutil_test

import (
	"log/slog"
	"testing"

	"github.com/amp-labs/multiview/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringFromProcessEnvironment(t *testing.T) { //nolint:paralleltest // uses t.Setenv
	t.Setenv("MULTIVIEW_TEST_STRING", "hello")

	reader := envutil.String(t.Context(), "MULTIVIEW_TEST_STRING")
	value, err := reader.Value()
	require.NoError(t, err)
	assert.Equal(t, "hello", value)
	assert.True(t, reader.HasValue())
	assert.Equal(t, "MULTIVIEW_TEST_STRING", reader.Key())
}

func TestOverrideWinsOverEnvironment(t *testing.T) { //nolint:paralleltest // uses t.Setenv
	t.Setenv("MULTIVIEW_TEST_OVERRIDE", "from-env")

	ctx := envutil.WithEnvOverride(t.Context(), "MULTIVIEW_TEST_OVERRIDE", "from-ctx")

	assert.Equal(t, "from-ctx", envutil.String(ctx, "MULTIVIEW_TEST_OVERRIDE").ValueOrElse(""))
}

func TestString(t *testing.T) {
	t.Parallel()

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()

		reader := envutil.String(t.Context(), "MULTIVIEW_TEST_STRING_MISSING")
		_, err := reader.Value()
		require.ErrorIs(t, err, envutil.ErrEnvVarMissing)
		assert.False(t, reader.HasValue())
		assert.Equal(t, "MULTIVIEW_TEST_STRING_MISSING=<not set>", reader.String())
	})

	t.Run("with default", func(t *testing.T) {
		t.Parallel()

		reader := envutil.String(t.Context(), "MULTIVIEW_TEST_STRING_MISSING", envutil.Default("default"))
		value, err := reader.Value()
		require.NoError(t, err)
		assert.Equal(t, "default", value)
	})

	t.Run("missing with custom error", func(t *testing.T) {
		t.Parallel()

		errRequired := assert.AnError
		reader := envutil.String(t.Context(), "MULTIVIEW_TEST_STRING_MISSING", envutil.IfMissing[string](errRequired))

		_, err := reader.Value()
		require.ErrorIs(t, err, errRequired)
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
	})
}

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected bool
		wantErr  bool
	}{
		{raw: "true", expected: true},
		{raw: "1", expected: true},
		{raw: " false ", expected: false},
		{raw: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			ctx := envutil.WithEnvOverride(t.Context(), "FLAG", tt.raw)
			value, err := envutil.Bool(ctx, "FLAG").Value()

			if tt.wantErr {
				require.ErrorIs(t, err, envutil.ErrBadEnvVar)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestInt(t *testing.T) {
	t.Parallel()

	t.Run("parses", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "WIDTH", "120")
		assert.Equal(t, 120, envutil.Int(ctx, "WIDTH").ValueOrElse(0))
	})

	t.Run("falls back on a parse error", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "WIDTH", "wide")
		reader := envutil.Int(ctx, "WIDTH")

		assert.True(t, reader.HasError())
		assert.Equal(t, 80, reader.ValueOrElse(80))
	})

	t.Run("validates", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "WIDTH", "-3")
		reader := envutil.Int(ctx, "WIDTH", envutil.Validate(func(w int) error {
			if w <= 0 {
				return assert.AnError
			}

			return nil
		}))

		_, err := reader.Value()
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected slog.Level
	}{
		{raw: "debug", expected: slog.LevelDebug},
		{raw: "INFO", expected: slog.LevelInfo},
		{raw: " warn ", expected: slog.LevelWarn},
		{raw: "error", expected: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			ctx := envutil.WithEnvOverride(t.Context(), "LOG_LEVEL", tt.raw)
			level, err := envutil.SlogLevel(ctx, "LOG_LEVEL").Value()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	t.Run("default when unset", func(t *testing.T) {
		t.Parallel()

		level, err := envutil.SlogLevel(t.Context(), "MULTIVIEW_TEST_LEVEL_MISSING",
			envutil.Default(slog.LevelWarn)).Value()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelWarn, level)
	})
}

func TestStrings(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "ORDERS", " ascending, middle-out,,side-cross ")

	values, err := envutil.Strings(ctx, "ORDERS", ",").Value()
	require.NoError(t, err)
	assert.Equal(t, []string{"ascending", "middle-out", "side-cross"}, values)
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	t.Run("normalizes an accepted value", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "FORMAT", "JSON")
		value, err := envutil.String(ctx, "FORMAT", envutil.OneOf("text", "json")).Value()
		require.NoError(t, err)
		assert.Equal(t, "json", value)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "FORMAT", "xml")
		_, err := envutil.String(ctx, "FORMAT", envutil.OneOf("text", "json")).Value()
		require.ErrorIs(t, err, envutil.ErrNotAllowed)
	})

	t.Run("validates the default too", func(t *testing.T) {
		t.Parallel()

		value, err := envutil.String(t.Context(), "MULTIVIEW_TEST_FORMAT_MISSING",
			envutil.Default("text"), envutil.OneOf("text", "json")).Value()
		require.NoError(t, err)
		assert.Equal(t, "text", value)
	})
}

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("transforms present values", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "NAME", "cat")
		reader := envutil.Map(envutil.String(ctx, "NAME"), func(s string) (int, error) {
			return len(s), nil
		})

		assert.Equal(t, 3, reader.ValueOrElse(0))
	})

	t.Run("skips missing values", func(t *testing.T) {
		t.Parallel()

		called := false
		reader := envutil.Map(envutil.String(t.Context(), "MULTIVIEW_TEST_NAME_MISSING"), func(s string) (int, error) {
			called = true

			return len(s), nil
		})

		assert.False(t, called)
		assert.False(t, reader.HasValue())
	})
}

func TestNewReader(t *testing.T) {
	t.Parallel()

	reader := envutil.NewReader("K", true, nil, 7)

	value, err := reader.Value()
	require.NoError(t, err)
	assert.Equal(t, 7, value)
	assert.Equal(t, "K=7", reader.String())
}
