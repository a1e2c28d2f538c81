package fontbank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBank(t *testing.T, v Version) *FontBank {
	t.Helper()
	b, err := GetFontBank(v)
	require.NoError(t, err)
	return b
}

func TestParseVersion(t *testing.T) {
	for _, v := range []Version{Jak1V1, Jak1V2, Jak2} {
		got, err := ParseVersion(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := ParseVersion("jak3")
	var uv *UnknownVersionError
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, "jak3", uv.Name)
}

func TestRegistry(t *testing.T) {
	for _, v := range []Version{Jak1V1, Jak1V2, Jak2} {
		b := mustBank(t, v)
		assert.Equal(t, v, b.Version())
	}

	_, err := GetFontBank(Version(42))
	assert.Error(t, err)

	b, err := GetFontBankByName("jak2")
	require.NoError(t, err)
	assert.Equal(t, Jak2, b.Version())
}

func TestDefaultFontBank(t *testing.T) {
	t.Setenv("GAMETEXT_VERSION", "")
	b, err := DefaultFontBank()
	require.NoError(t, err)
	assert.Equal(t, Jak1V2, b.Version())

	t.Setenv("GAMETEXT_VERSION", "jak2")
	b, err = DefaultFontBank()
	require.NoError(t, err)
	assert.Equal(t, Jak2, b.Version())
}

func TestValidChar(t *testing.T) {
	jak1 := mustBank(t, Jak1V1)
	jak2 := mustBank(t, Jak2)

	for _, c := range []byte{'0', '9', 'A', 'Z', '~', ' ', '?'} {
		assert.True(t, jak1.ValidChar(c), "jak1 %q", c)
		assert.True(t, jak2.ValidChar(c), "jak2 %q", c)
	}

	// lowercase and ']' arrived with the second-generation font
	assert.False(t, jak1.ValidChar('a'))
	assert.True(t, jak2.ValidChar('a'))
	assert.False(t, jak1.ValidChar(']'))
	assert.True(t, jak2.ValidChar(']'))

	// backslash is reserved for escapes in every bank
	assert.False(t, jak1.ValidChar('\\'))
	assert.False(t, jak2.ValidChar('\\'))
}

func TestLongestMatchWins(t *testing.T) {
	bank := NewFontBank(Version(99), Caps{}, []EncodeInfo{
		{"A", []byte{0x41}},
		{"AB", []byte{0x42}},
		{"C", []byte{0x41, 0x42}},
	}, nil, nil)

	got, err := bank.ConvertUTF8ToGame("AB", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42}, got)

	got, err = bank.ConvertUTF8ToGame("ABA", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42, 0x41}, got)

	// a pattern longer than the remaining input must not match
	got, err = bank.ConvertUTF8ToGame("A", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41}, got)

	// byte side: two-byte rule beats the one-byte prefix rule
	assert.Equal(t, "C", bank.ConvertGameToUTF8([]byte{0x41, 0x42}, false))
	assert.Equal(t, "A", bank.ConvertGameToUTF8([]byte{0x41}, false))
}

func TestEqualLengthTiesKeepTableOrder(t *testing.T) {
	bank := NewFontBank(Version(99), Caps{},
		[]EncodeInfo{
			{"Z", []byte{0x30}},
			{"Z", []byte{0x31}},
			{"P", []byte{0x40}},
			{"Q", []byte{0x40}},
		},
		[]ReplaceInfo{
			{From: "QQ", To: "1"},
			{From: "QQ", To: "2"},
		}, nil)

	got, err := bank.ConvertUTF8ToGame("Z", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x30}, got)

	assert.Equal(t, "P", bank.ConvertGameToUTF8([]byte{0x40}, false))
	assert.Equal(t, "1", bank.ConvertGameToUTF8([]byte("QQ"), false))

	// "2" folds to QQ which then hits the Q encode rule
	got, err = bank.ConvertUTF8ToGame("2", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x40, 0x40}, got)
}

func TestEscapeInterpretation(t *testing.T) {
	jak1 := mustBank(t, Jak1V1)

	// \cXX injects the raw byte
	got, err := jak1.ConvertUTF8ToGame(`\c05`, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05}, got)

	// with escaping off the backslash is literal text
	got, err = jak1.ConvertUTF8ToGame(`\c05`, false)
	require.NoError(t, err)
	assert.Equal(t, []byte(`\c05`), got)

	// escaped byte and raw byte encode identically
	jak2 := mustBank(t, Jak2)
	escaped, err := jak2.ConvertUTF8ToGame(`a\c41b`, true)
	require.NoError(t, err)
	plain, err := jak2.ConvertUTF8ToGame("a\x41b", false)
	require.NoError(t, err)
	assert.Equal(t, plain, escaped)

	// a bare quote needs no escape but accepts one
	got, err = jak2.ConvertUTF8ToGame(`A"B`, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x22, 0x42}, got)

	got, err = jak2.ConvertUTF8ToGame(`A\"B\\C`, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x22, 0x42, 0x5c, 0x43}, got)
}

func TestEscapeErrors(t *testing.T) {
	jak1 := mustBank(t, Jak1V1)
	tests := []struct {
		name string
		in   string
		kind ConvertErrorKind
		pos  int
	}{
		{"trailing backslash", `AB\`, ErrIncompleteEscape, 2},
		{"truncated hex", `A\c4`, ErrIncompleteEscape, 1},
		{"bad hex digits", `A\c4g`, ErrInvalidHexEscape, 1},
		{"unknown escape", `A\q`, ErrInvalidEscape, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := jak1.ConvertUTF8ToGame(tc.in, true)
			var ce *ConvertError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.kind, ce.Kind)
			assert.Equal(t, tc.pos, ce.Position)
		})
	}
}

func TestGeneratedEscapes(t *testing.T) {
	jak1 := mustBank(t, Jak1V1)

	// bytes with no glyph and no literal form come out as \cXX, and the
	// generated escape re-encodes to the original byte
	text := jak1.ConvertGameToUTF8([]byte{0x05}, false)
	assert.Equal(t, `\c05`, text)
	got, err := jak1.ConvertUTF8ToGame(text, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05}, got)

	// control characters escape symbolically
	assert.Equal(t, `\n`, jak1.ConvertGameToUTF8([]byte{'\n'}, false))
	assert.Equal(t, `\t`, jak1.ConvertGameToUTF8([]byte{'\t'}, false))
	assert.Equal(t, `A\"B`, jak1.ConvertGameToUTF8([]byte{0x41, 0x22, 0x42}, false))
}

func TestJak1Conversions(t *testing.T) {
	jak1 := mustBank(t, Jak1V1)

	// accented letter folds into base letter + diacritic draw commands
	got, err := jak1.ConvertUTF8ToGame("Á", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x41, 0x7e, 0x59, 0x7e, 0x2d, 0x32, 0x31, 0x48,
		0x7e, 0x2d, 0x35, 0x56, 0x12, 0x7e, 0x5a,
	}, got)
	assert.Equal(t, "Á", jak1.ConvertGameToUTF8(got, false))

	// voiced kana composes from base kana + dakuten overlay
	got, err = jak1.ConvertUTF8ToGame("ガ", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7e, 0x59, 0xd8, 0x7e, 0x5a, 0x91}, got)
	assert.Equal(t, "ガ", jak1.ConvertGameToUTF8(got, false))

	// 世 rides on the wave-dash command
	got, err = jak1.ConvertUTF8ToGame("世", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7e, 0x7e}, got)
	assert.Equal(t, "世", jak1.ConvertGameToUTF8(got, false))

	// lowercase bytes land on kanji glyphs in this font
	assert.Equal(t, "撃", jak1.ConvertGameToUTF8([]byte{'a'}, false))
}

func TestJak1V2Extensions(t *testing.T) {
	v1 := mustBank(t, Jak1V1)
	v2 := mustBank(t, Jak1V2)

	got, err := v2.ConvertUTF8ToGame("掘", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x5f}, got)
	assert.Equal(t, "掘", v2.ConvertGameToUTF8(got, false))

	// v1 has no glyph for it; the raw UTF-8 bytes pass through
	got, err = v1.ConvertUTF8ToGame("掘", false)
	require.NoError(t, err)
	assert.Equal(t, []byte("掘"), got)
}

func TestJak2Conversions(t *testing.T) {
	jak2 := mustBank(t, Jak2)

	roundTrips := []string{
		"jak and daxter",
		"é", "ç", "ガ", "ぱ",
		"<PAD_X>", "<PAD_DPAD_UP>", "<FLAG_JAPAN>", "<COLOR_DEFAULT>",
		"p", "q", "°",
	}
	for _, text := range roundTrips {
		game, err := jak2.ConvertUTF8ToGame(text, false)
		require.NoError(t, err, "%q", text)
		assert.Equal(t, text, jak2.ConvertGameToUTF8(game, false), "%q", text)
	}

	// hangul jamo glyphs surface as page markers
	assert.Equal(t, "<H306>", jak2.ConvertGameToUTF8([]byte{3, 0x06}, false))
	assert.Equal(t, "<H186>", jak2.ConvertGameToUTF8([]byte{1, 0x86}, false))
	got, err := jak2.ConvertUTF8ToGame("<H3ff>", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 0xff}, got)

	// kanji moved to multi-byte pages
	got, err = jak2.ConvertUTF8ToGame("位", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0x8c}, got)
	got, err = jak2.ConvertUTF8ToGame("足", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 0x8d}, got)
}

func TestJak2BackslashGlyph(t *testing.T) {
	jak2 := mustBank(t, Jak2)

	// a raw backslash byte escapes to \\ which only then matches the ~%
	// replace rule; this is why replace rules fold a second time after
	// escaping
	assert.Equal(t, "~%", jak2.ConvertGameToUTF8([]byte{0x5c}, false))
}

func TestEmptyInput(t *testing.T) {
	jak1 := mustBank(t, Jak1V1)

	got, err := jak1.ConvertUTF8ToGame("", true)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "", jak1.ConvertGameToUTF8(nil, false))
	assert.Equal(t, "", jak1.ConvertGameToUTF8(nil, true))
}

func TestUnknownVersionErrorMessage(t *testing.T) {
	_, err := GetFontBankByName("jak3")
	require.Error(t, err)
	assert.Equal(t, `fontbank: unknown text version "jak3"`, err.Error())
	assert.True(t, errors.As(err, new(*UnknownVersionError)))
}
