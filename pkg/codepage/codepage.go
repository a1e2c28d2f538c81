// Package codepage converts source text between legacy game codepages
// and UTF-8. Translation projects frequently keep their text assets in
// the codepage of the original release (Shift_JIS for japanese scripts,
// EUC-KR for korean ones); everything downstream of this package works
// on UTF-8 only. The conversions themselves come from golang.org/x/text,
// which provides production-quality codepage implementations.
package codepage

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Type identifies a source text codepage.
type Type int

const (
	UTF8     Type = iota // no conversion
	ShiftJIS             // Japanese (CP932)
	EUCJP                // Japanese (EUC-JP)
	GBK                  // Simplified Chinese (CP936)
	EUCKR                // Korean (CP949)
)

func (t Type) String() string {
	switch t {
	case UTF8:
		return "UTF-8"
	case ShiftJIS:
		return "Shift_JIS"
	case EUCJP:
		return "EUC-JP"
	case GBK:
		return "GBK"
	case EUCKR:
		return "EUC-KR"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Parse maps a codepage name, as written in project configuration, onto
// its Type. Matching is case-insensitive and accepts the common aliases.
func Parse(name string) (Type, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "UTF8", "UTF-8":
		return UTF8, true
	case "SHIFTJIS", "SHIFT_JIS", "SHIFT-JIS", "SJS", "SJIS", "CP932":
		return ShiftJIS, true
	case "EUC-JP", "EUC_JP", "EUC":
		return EUCJP, true
	case "GBK", "CP936", "GB2312":
		return GBK, true
	case "EUC-KR", "EUC_KR", "CP949":
		return EUCKR, true
	default:
		return UTF8, false
	}
}

func (t Type) codec() (encoding.Encoding, error) {
	switch t {
	case UTF8:
		return unicode.UTF8, nil
	case ShiftJIS:
		return japanese.ShiftJIS, nil
	case EUCJP:
		return japanese.EUCJP, nil
	case GBK:
		return simplifiedchinese.GBK, nil
	case EUCKR:
		return korean.EUCKR, nil
	default:
		return nil, fmt.Errorf("unsupported codepage: %v", t)
	}
}

// ToUTF8 converts a byte string from the given codepage to UTF-8.
func ToUTF8(data []byte, cp Type) (string, error) {
	if cp == UTF8 {
		return string(data), nil
	}
	codec, err := cp.codec()
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(codec.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decoding %v text: %w", cp, err)
	}
	return string(out), nil
}

// FromUTF8 converts a UTF-8 string to the given codepage.
func FromUTF8(text string, cp Type) ([]byte, error) {
	if cp == UTF8 {
		return []byte(text), nil
	}
	codec, err := cp.codec()
	if err != nil {
		return nil, err
	}
	out, _, err := transform.String(codec.NewEncoder(), text)
	if err != nil {
		return nil, fmt.Errorf("encoding %v text: %w", cp, err)
	}
	return []byte(out), nil
}

// IsLeadByte reports whether b opens a multibyte character in the given
// codepage. Used for safely stepping through undecoded strings.
func IsLeadByte(b byte, cp Type) bool {
	switch cp {
	case ShiftJIS:
		return b >= 0x81 && b <= 0x9f || b >= 0xe0 && b <= 0xfc
	case EUCJP:
		return b >= 0xa1 && b <= 0xfe
	case GBK, EUCKR:
		return b >= 0x81 && b <= 0xfe
	default:
		return false
	}
}
