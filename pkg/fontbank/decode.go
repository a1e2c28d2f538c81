package fontbank

import (
	"fmt"
	"strings"
)

// ValidChar reports whether a raw byte may appear unescaped in display
// text for this bank: digits, uppercase letters, the bank's passthrough
// set, lowercase letters when the bank allows them, and never backslash.
func (b *FontBank) ValidChar(c byte) bool {
	if c == '\\' {
		return false
	}
	if c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' {
		return true
	}
	if b.caps.AllowLowercase && c >= 'a' && c <= 'z' {
		return true
	}
	return b.passthrus[c]
}

// replaceToUTF8 expands encoded substrings into their display forms.
func (b *FontBank) replaceToUTF8(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); {
		if info := b.findReplaceToUTF8(text, i); info != nil {
			sb.WriteString(info.To)
			i += len(info.From)
		} else {
			sb.WriteByte(text[i])
			i++
		}
	}
	return sb.String()
}

// decodeGameToUTF8 maps game font bytes onto displayed characters. Bytes
// outside the bank's valid literal range that match no encode rule are
// rendered as generated \cXX escapes.
func (b *FontBank) decodeGameToUTF8(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 2)
	for i := 0; i < len(data); {
		if info := b.findEncodeToUTF8(data, i); info != nil {
			sb.WriteString(info.Chars)
			i += len(info.Bytes)
			continue
		}
		c := data[i]
		if b.ValidChar(c) || c == '\n' || c == '\t' || c == '\\' || c == '"' {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "\\c%02x", c)
		}
		i++
	}
	return sb.String()
}

// emitEscapes rewrites control characters as printable escape sequences.
// A backslash that opens a generated \cXX escape is left alone.
func emitEscapes(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\\':
			if i+1 < len(text) && text[i+1] == 'c' {
				sb.WriteByte(c)
			} else {
				sb.WriteString(`\\`)
			}
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// ConvertGameToUTF8 converts a string in the bank's font encoding into a
// printable display string, safe for inclusion in a quoted literal.
// korean enables the pre-pass for the korean script format.
func (b *FontBank) ConvertGameToUTF8(data []byte, korean bool) string {
	return b.convertGameToUTF8(data, korean, nil)
}

// ConvertGameToUTF8Seqs is ConvertGameToUTF8 with a collector that
// receives the distinct multi-glyph sequences seen by the korean
// pre-pass. A nil collector disables collection.
func (b *FontBank) ConvertGameToUTF8Seqs(data []byte, korean bool, seqs *SeqCollector) string {
	return b.convertGameToUTF8(data, korean, seqs)
}

func (b *FontBank) convertGameToUTF8(data []byte, korean bool, seqs *SeqCollector) string {
	if korean {
		data = decodeKoreanText(data, seqs)
	}
	text := b.replaceToUTF8(b.decodeGameToUTF8(data))
	// Replace rules are folded once more after escaping: some encoded
	// forms contain backslashes or quotes and only surface once the
	// escape pass has rewritten them.
	return b.replaceToUTF8(emitEscapes(text))
}
