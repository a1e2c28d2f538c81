package fontbank

// Kana glyphs occupy one contiguous code run in every bank, in the same
// order; only the run's starting code differs per version. The run opens
// with the japanese punctuation glyphs that share the same code page.
const kanaRun = "・゛゜ー『』" +
	"ぁあぃいぅうぇえぉおかきくけこさしすせそたちっつてとなにぬねの" +
	"はひふへほまみむめもゃやゅゆょよらりるれろゎわをん" +
	"ァアィイゥウェエォオカキクケコサシスセソタチッツテトナニヌネノ" +
	"ハヒフヘホマミムメモャヤュユョヨラリル"

// kanaRunTail extends the run for banks that keep the remaining katakana
// inside the same code page instead of scattering them elsewhere.
const kanaRunTail = "レロヮワヲン"

// kanaEncodeInfo builds one encode rule per rune of run, with the byte
// sequence supplied by code for each run index.
func kanaEncodeInfo(run string, code func(i int) []byte) []EncodeInfo {
	var infos []EncodeInfo
	i := 0
	for _, r := range run {
		infos = append(infos, EncodeInfo{Chars: string(r), Bytes: code(i)})
		i++
	}
	return infos
}

// Voiced and semi-voiced kana are drawn in game as the base kana overlaid
// with a dakuten or handakuten glyph. The pair strings below alternate
// base and composed forms.
const dakutenPairs = "ウヴカガキギクグケゲコゴサザシジスズセゼソゾ" +
	"タダチヂツヅテデトドハバヒビフブヘベホボ" +
	"かがきぎくぐけげこごさざしじすずせぜそぞ" +
	"ただちぢつづてでとどはばひびふぶへべほぼ"

const handakutenPairs = "ハパヒピフプヘペホポはぱひぴふぷへぺほぽ"

// composeReplaceInfo builds the replace rules folding a base kana plus
// overlay mark into the precomposed display character.
func composeReplaceInfo(pairs, mark string) []ReplaceInfo {
	runes := []rune(pairs)
	infos := make([]ReplaceInfo, 0, len(runes)/2)
	for i := 0; i+1 < len(runes); i += 2 {
		infos = append(infos, ReplaceInfo{
			From: "~Y" + string(runes[i]) + "~Z" + mark,
			To:   string(runes[i+1]),
		})
	}
	return infos
}
