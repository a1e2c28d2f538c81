package fontbank

import "github.com/yoremi/fontbank-go/pkg/codepage"

// ConvertTextToGame converts source text stored in a legacy codepage
// into the bank's font encoding. The text is first decoded to UTF-8,
// then transcoded like ConvertUTF8ToGame.
func (b *FontBank) ConvertTextToGame(data []byte, cp codepage.Type, escape bool) ([]byte, error) {
	text, err := codepage.ToUTF8(data, cp)
	if err != nil {
		return nil, err
	}
	return b.ConvertUTF8ToGame(text, escape)
}
