package fontbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoremi/fontbank-go/pkg/codepage"
)

func TestConvertTextToGame(t *testing.T) {
	jak1 := mustBank(t, Jak1V1)

	// Shift_JIS あ decodes to UTF-8 first, then hits the kana table
	got, err := jak1.ConvertTextToGame([]byte{0x82, 0xa0}, codepage.ShiftJIS, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x97}, got)

	// UTF-8 input passes straight through to the transcoder
	got, err = jak1.ConvertTextToGame([]byte("あ"), codepage.UTF8, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x97}, got)
}
