package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("GAMETEXT_VERSION", "")
	t.Setenv("GAMETEXT_CODEPAGE", "")
	assert.Equal(t, DefaultTextVersion, TextVersion())
	assert.Equal(t, DefaultCodepage, Codepage())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("GAMETEXT_VERSION", "jak2")
	t.Setenv("GAMETEXT_CODEPAGE", "Shift_JIS")
	assert.Equal(t, "jak2", TextVersion())
	assert.Equal(t, "Shift_JIS", Codepage())
}
