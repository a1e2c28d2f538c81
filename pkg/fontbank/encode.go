package fontbank

import "strings"

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// interpretEscapes resolves the escape sequences allowed in display text:
// \cXX emits the raw byte XX, \" and \\ emit the literal character. A
// bare quote passes through unchanged.
func interpretEscapes(text string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		if i+1 >= len(text) {
			return "", fail(ErrIncompleteEscape, i)
		}
		switch p := text[i+1]; p {
		case 'c':
			if i+3 >= len(text) {
				return "", fail(ErrIncompleteEscape, i)
			}
			hi, ok1 := hexVal(text[i+2])
			lo, ok2 := hexVal(text[i+3])
			if !ok1 || !ok2 {
				return "", fail(ErrInvalidHexEscape, i)
			}
			sb.WriteByte(hi<<4 | lo)
			i += 3
		case '"', '\\':
			sb.WriteByte(p)
			i++
		default:
			return "", fail(ErrInvalidEscape, i)
		}
	}
	return sb.String(), nil
}

// replaceToGame folds display substrings back into their encoded forms.
func (b *FontBank) replaceToGame(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); {
		if info := b.findReplaceToGame(text, i); info != nil {
			sb.WriteString(info.From)
			i += len(info.To)
		} else {
			sb.WriteByte(text[i])
			i++
		}
	}
	return sb.String()
}

// encodeUTF8ToGame maps displayed characters onto game font bytes.
// Characters with no encode rule are copied as their raw byte value.
func (b *FontBank) encodeUTF8ToGame(text string) []byte {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); {
		if info := b.findEncodeToGame(text, i); info != nil {
			out = append(out, info.Bytes...)
			i += len(info.Chars)
		} else {
			out = append(out, text[i])
			i++
		}
	}
	return out
}

// ConvertUTF8ToGame converts a readable display string into the bank's
// in-game font encoding. When escape is set, escape sequences in the
// input are interpreted first.
func (b *FontBank) ConvertUTF8ToGame(text string, escape bool) ([]byte, error) {
	if escape {
		var err error
		if text, err = interpretEscapes(text); err != nil {
			return nil, err
		}
	}
	return b.encodeUTF8ToGame(b.replaceToGame(text)), nil
}
