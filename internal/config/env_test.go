package config

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("WHEEL_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("WHEEL_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("WHEEL_TEST_UNSET", "fallback"))

	t.Setenv("WHEEL_TEST_EMPTY", "")
	assert.Equal(t, "", GetEnv("WHEEL_TEST_EMPTY", "fallback"))
}

func TestGetEnvInt64(t *testing.T) {
	n, err := GetEnvInt64("WHEEL_TEST_UNSET", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	t.Setenv("WHEEL_TEST_INT", " -42 ")
	n, err = GetEnvInt64("WHEEL_TEST_INT", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), n)

	t.Setenv("WHEEL_TEST_INT", "forty")
	n, err = GetEnvInt64("WHEEL_TEST_INT", 7)
	assert.Equal(t, int64(7), n)
	var envErr *EnvError
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, "WHEEL_TEST_INT", envErr.Key)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value   string
		want    bool
		wantErr bool
	}{
		{"", true, false},
		{"false", false, false},
		{"0", false, false},
		{"TRUE", true, false},
		{"maybe", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("WHEEL_TEST_BOOL", tt.value)
			got, err := GetEnvBool("WHEEL_TEST_BOOL", true)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
