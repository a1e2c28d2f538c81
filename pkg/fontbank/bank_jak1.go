package fontbank

// First-generation font. The v2 bank is identical except that the large
// space glyph works and 掘 no longer overlaps the underscore.

var jak1Passthrus = []byte{
	'~', ' ', ',', '.', '-', '+', '(', ')', '!', ':', '?',
	'=', '%', '*', '/', '#', ';', '<', '>', '@', '[', '_',
}

func jak1EncodeInfo(v2 bool) []EncodeInfo {
	infos := []EncodeInfo{
		// diacritic overlay glyphs
		{"ˇ", []byte{0x10}},     // caron
		{"`", []byte{0x11}},     // grave accent
		{"'", []byte{0x12}},     // apostrophe
		{"^", []byte{0x13}},     // circumflex
		{"<TIL>", []byte{0x14}}, // tilde
		{"¨", []byte{0x15}},     // umlaut
		{"º", []byte{0x16}},     // numero/overring
		{"¡", []byte{0x17}},
		{"¿", []byte{0x18}},

		{"海", []byte{0x1a}},
		{"Æ", []byte{0x1b}},
		{"界", []byte{0x1c}},
		{"Ç", []byte{0x1d}},
		{"学", []byte{0x1e}},
		{"ß", []byte{0x1f}},

		{"ワ", []byte{0x24}},
		{"ヲ", []byte{0x26}},
		{"ン", []byte{0x27}},

		{"岩", []byte{0x5c}},
		{"旧", []byte{0x5d}},
		{"空", []byte{0x5e}},

		{"ヮ", []byte{0x60}},
		{"撃", []byte{0x61}},
		{"賢", []byte{0x62}},
		{"湖", []byte{0x63}},
		{"口", []byte{0x64}},
		{"行", []byte{0x65}},
		{"合", []byte{0x66}},
		{"士", []byte{0x67}},
		{"寺", []byte{0x68}},
		{"山", []byte{0x69}},
		{"者", []byte{0x6a}},
		{"所", []byte{0x6b}},
		{"書", []byte{0x6c}},
		{"小", []byte{0x6d}},
		{"沼", []byte{0x6e}},
		{"上", []byte{0x6f}},
		{"城", []byte{0x70}},
		{"場", []byte{0x71}},
		{"出", []byte{0x72}},
		{"闇", []byte{0x73}},
		{"遺", []byte{0x74}},
		{"黄", []byte{0x75}},
		{"屋", []byte{0x76}},
		{"下", []byte{0x77}},
		{"家", []byte{0x78}},
		{"火", []byte{0x79}},
		{"花", []byte{0x7a}},
		{"レ", []byte{0x7b}},
		{"Œ", []byte{0x7c}},
		{"ロ", []byte{0x7d}},

		{"青", []byte{0x7f}},
	}
	if v2 {
		infos = append(infos,
			EncodeInfo{"_", []byte{0x03}}, // large space
			EncodeInfo{"掘", []byte{0x5f}},
		)
	}
	// punctuation + kana, one contiguous run
	infos = append(infos, kanaEncodeInfo(kanaRun, func(i int) []byte {
		return []byte{byte(0x90 + i)}
	})...)
	// second kanji page
	infos = append(infos, []EncodeInfo{
		{"宝", []byte{1, 0x01}},

		{"石", []byte{1, 0x10}},
		{"赤", []byte{1, 0x11}},
		{"跡", []byte{1, 0x12}},
		{"川", []byte{1, 0x13}},
		{"戦", []byte{1, 0x14}},
		{"村", []byte{1, 0x15}},
		{"隊", []byte{1, 0x16}},
		{"台", []byte{1, 0x17}},
		{"長", []byte{1, 0x18}},
		{"鳥", []byte{1, 0x19}},
		{"艇", []byte{1, 0x1a}},
		{"洞", []byte{1, 0x1b}},
		{"道", []byte{1, 0x1c}},
		{"発", []byte{1, 0x1d}},
		{"飛", []byte{1, 0x1e}},
		{"噴", []byte{1, 0x1f}},

		{"池", []byte{1, 0xa0}},
		{"中", []byte{1, 0xa1}},
		{"塔", []byte{1, 0xa2}},
		{"島", []byte{1, 0xa3}},
		{"部", []byte{1, 0xa4}},
		{"砲", []byte{1, 0xa5}},
		{"産", []byte{1, 0xa6}},
		{"眷", []byte{1, 0xa7}},
		{"力", []byte{1, 0xa8}},
		{"緑", []byte{1, 0xa9}},
		{"岸", []byte{1, 0xaa}},
		{"像", []byte{1, 0xab}},
		{"谷", []byte{1, 0xac}},
		{"心", []byte{1, 0xad}},
		{"森", []byte{1, 0xae}},
		{"水", []byte{1, 0xaf}},
		{"船", []byte{1, 0xb0}},
		{"™", []byte{1, 0xb1}},
	}...)
	return infos
}

func jak1ReplaceInfo() []ReplaceInfo {
	infos := []ReplaceInfo{
		// ring, ogonek, stroke
		{"A~Y~-21H~-5Vº~Z", "Å"},
		{"N~Y~-6Hº~Z~+10H", "Nº"},
		{"O~Y~-16H~-1V/~Z", "Ø"},
		{"A~Y~-6H~+3V,~Z", "Ą"},
		{"E~Y~-6H~+2V,~Z", "Ę"},
		{"L~Y~-16H~+0V/~Z", "Ł"},
		{"Z~Y~-21H~-5Vº~Z", "Ż"},

		// tildes
		{"N~Y~-22H~-4V<TIL>~Z", "Ñ"},
		{"A~Y~-21H~-5V<TIL>~Z", "Ã"},
		{"O~Y~-22H~-4V<TIL>~Z", "Õ"},

		// acute accents
		{"A~Y~-21H~-5V'~Z", "Á"},
		{"E~Y~-22H~-5V'~Z", "É"},
		{"I~Y~-19H~-5V'~Z", "Í"},
		{"O~Y~-22H~-4V'~Z", "Ó"},
		{"U~Y~-24H~-3V'~Z", "Ú"},
		{"C~Y~-21H~-5V'~Z", "Ć"},
		{"N~Y~-21H~-5V'~Z", "Ń"},
		{"S~Y~-21H~-5V'~Z", "Ś"},
		{"Z~Y~-21H~-5V'~Z", "Ź"},

		// double acute accents
		{"O~Y~-28H~-4V'~-9H'~Z", "Ő"},
		{"U~Y~-27H~-4V'~-12H'~Z", "Ű"},

		// circumflex
		{"A~Y~-20H~-4V^~Z", "Â"},
		{"E~Y~-20H~-5V^~Z", "Ê"},
		{"I~Y~-19H~-5V^~Z", "Î"},
		{"O~Y~-20H~-4V^~Z", "Ô"},
		{"U~Y~-24H~-3V^~Z", "Û"},

		// grave accents
		{"A~Y~-21H~-5V`~Z", "À"},
		{"E~Y~-22H~-5V`~Z", "È"},
		{"I~Y~-19H~-5V`~Z", "Ì"},
		{"O~Y~-22H~-4V`~Z", "Ò"},
		{"U~Y~-24H~-3V`~Z", "Ù"},

		// umlaut
		{"A~Y~-21H~-5V¨~Z", "Ä"},
		{"E~Y~-20H~-5V¨~Z", "Ë"},
		{"I~Y~-19H~-5V¨~Z", "Ï"},
		{"O~Y~-22H~-4V¨~Z", "Ö"},
		{"O~Y~-22H~-3V¨~Z", "ö"},
		{"U~Y~-22H~-3V¨~Z", "Ü"},
	}
	infos = append(infos, composeReplaceInfo(dakutenPairs, "゛")...)
	infos = append(infos, composeReplaceInfo(handakutenPairs, "゜")...)
	infos = append(infos, []ReplaceInfo{
		// japanese punctuation
		{",~+8H", "、"},
		{"~+8H ", "　"},

		// special case kanji drawn with the wave-dash command
		{"~~", "世"},

		// controller buttons
		{"~Y~22L<~Z~Y~27L*~Z~Y~1L>~Z~Y~23L[~Z~+26H", "<PAD_X>"},
		{"~Y~22L<~Z~Y~26L;~Z~Y~1L>~Z~Y~23L[~Z~+26H", "<PAD_TRIANGLE>"},
		{"~Y~22L<~Z~Y~25L@~Z~Y~1L>~Z~Y~23L[~Z~+26H", "<PAD_CIRCLE>"},
		{"~Y~22L<~Z~Y~24L#~Z~Y~1L>~Z~Y~23L[~Z~+26H", "<PAD_SQUARE>"},
	}...)
	return infos
}

func init() {
	replace := jak1ReplaceInfo()
	registerBank(NewFontBank(Jak1V1, Caps{}, jak1EncodeInfo(false), replace, jak1Passthrus))
	registerBank(NewFontBank(Jak1V2, Caps{}, jak1EncodeInfo(true), replace, jak1Passthrus))
}
