package fontbank

import "fmt"

// Second-generation font. Lowercase is part of the alphabet, button and
// flag artwork is assembled from part glyphs, and the korean release
// stores hangul as jamo glyph pages addressed through <HPXX> markers.

var jak2Passthrus = []byte{
	'~', ' ', ',', '.', '-', '+', '(', ')', '!', ':', '?',
	'=', '%', '*', '/', '#', ';', '<', '>', '@', '[', '_', ']',
}

// kanjiEncodeInfo builds one encode rule per rune of kanji, with codes
// counting up from start on the given glyph page.
func kanjiEncodeInfo(page byte, start int, kanji string) []EncodeInfo {
	var infos []EncodeInfo
	i := 0
	for _, r := range kanji {
		infos = append(infos, EncodeInfo{Chars: string(r), Bytes: []byte{page, byte(start + i)}})
		i++
	}
	return infos
}

// hangulGlyphInfo names raw glyph codes that have no character of their
// own; they surface in display text as <HPXX> markers.
func hangulGlyphInfo(page byte, lo, hi int) []EncodeInfo {
	infos := make([]EncodeInfo, 0, hi-lo+1)
	for c := lo; c <= hi; c++ {
		infos = append(infos, EncodeInfo{
			Chars: fmt.Sprintf("<H%d%02x>", page, c),
			Bytes: []byte{page, byte(c)},
		})
	}
	return infos
}

func jak2EncodeInfo() []EncodeInfo {
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
		{"<SOMETHING>", []byte{0x19}},
		{"ç", []byte{0x1d}},
		{"Ç", []byte{0x1e}},
		{"ß", []byte{0x1f}},

		{"œ", []byte{0x5e}},

		// flag and controller artwork parts
		{"<FLAG_PART_HORZ_STRIPE_MIDDLE>", []byte{0x7f}},
		{"<FLAG_PART_HORZ_STRIPE_BOTTOM>", []byte{0x80}},
		{"<FLAG_PART_VERT_STRIPE_LARGE>", []byte{0x81}},
		{"<FLAG_PART_VERT_STRIPE_RIGHT>", []byte{0x82}},
		{"<FLAG_PART_VERT_STRIPE_LEFT>", []byte{0x83}},
		{"<FLAG_PART_VERT_STRIPE_MIDDLE>", []byte{0x84}},
		{"<FLAG_PART_FILL>", []byte{0x85}},
		{"<FLAG_PART_JAPAN_SUN>", []byte{0x86}},
		{"<FLAG_PART_KOREA_TRIGRAMS_LEFT>", []byte{0x87}},
		{"<FLAG_PART_KOREA_TRIGRAMS_RIGHT>", []byte{0x88}},
		{"<FLAG_PART_KOREA_CIRCLE_TOP>", []byte{0x89}},
		{"<FLAG_PART_KOREA_CIRCLE_FILL>", []byte{0x8a}},
		{"<FLAG_PART_TOP_BOTTOM_STRIPE>", []byte{0x8b}},
		{"<FLAG_PART_UK_CROSS_LEFT>", []byte{0x8c}},
		{"<FLAG_PART_UK_CROSS_RIGHT>", []byte{0x8d}},
		{"<FLAG_PART_UK_FILL_LEFT>", []byte{0x8e}},
		{"<FLAG_PART_UK_FILL_RIGHT>", []byte{0x8f}},
		{"<FLAG_PART_USA_STRIPES_RIGHT>", []byte{0x90}},
		{"<PAD_PART_STICK>", []byte{0x91}},
		{"<PAD_PART_SELECT>", []byte{0x92}},
		{"<PAD_PART_TRIGGER_BACK>", []byte{0x93}},
		{"<PAD_PART_R1_NAME>", []byte{0x94}},
		{"<PAD_PART_L1_NAME>", []byte{0x95}},
		{"<PAD_PART_R2_NAME>", []byte{0x96}},
		{"<PAD_PART_L2_NAME>", []byte{0x97}},
		{"<PAD_PART_STICK_UP>", []byte{0x98}},
		{"<PAD_PART_STICK_UP_RIGHT>", []byte{0x99}},
		{"<FLAG_PART_USA_STRIPES_LEFT>", []byte{0x9a}},
		{"<FLAG_PART_USA_STARS>", []byte{0x9b}},
		{"<PAD_PART_STICK_DOWN>", []byte{0x9c}},
		{"<PAD_PART_STICK_DOWN_LEFT>", []byte{0x9d}},
		{"<PAD_PART_STICK_LEFT>", []byte{0x9e}},
		{"<PAD_PART_STICK_UP_LEFT>", []byte{0x9f}},
		{"<PAD_PART_DPAD_D>", []byte{0xa0}},
		{"<PAD_PART_DPAD_L>", []byte{0xa1}},
		{"<PAD_PART_DPAD_U>", []byte{0xa2}},
		{"<PAD_PART_DPAD_R>", []byte{0xa3}},
		{"<PAD_PART_STICK_RIGHT>", []byte{0xa4}},
		{"<PAD_PART_STICK_DOWN_RIGHT>", []byte{0xa5}},
		{"<PAD_PART_SHOULDER_TOP_LEFT>", []byte{0xa6}},
		{"<PAD_PART_SHOULDER_TOP_RIGHT>", []byte{0xa7}},
		{"<PAD_PART_TRIGGER_TOP_LEFT>", []byte{0xa8}},
		{"<PAD_PART_TRIGGER_TOP_RIGHT>", []byte{0xa9}},
		{"<PAD_PART_TRIGGER_SHIM1>", []byte{0xaa}},
		{"<PAD_PART_TRIGGER_SHIM2>", []byte{0xab}},
		{"<PAD_PART_SHOULDER_SHIM2>", []byte{0xac}},

		{"<PAD_PART_SHOULDER_BOTTOM_LEFT>", []byte{0xb0}},
		{"<PAD_PART_SHOULDER_BOTTOM_RIGHT>", []byte{0xb1}},
		{"<PAD_PART_TRIGGER_BOTTOM_LEFT>", []byte{0xb2}},
		{"<PAD_PART_TRIGGER_BOTTOM_RIGHT>", []byte{0xb3}},
	}
	// punctuation + kana moved to glyph page 1
	infos = append(infos, kanaEncodeInfo(kanaRun+kanaRunTail, func(i int) []byte {
		return []byte{1, byte(0x10 + i)}
	})...)
	// kanji pages
	infos = append(infos, kanjiEncodeInfo(1, 0x8c,
		"位遺院映衛応下画解開外害蓋完換監間器記逆救金空掘警迎撃建源現言限個庫後語護"+
			"交功向工攻溝行鉱降合告獄彩作山使始試字寺時示自式矢射者守手終週出所書勝章上"+
			"乗場森進人水数制性成聖石跡先戦船選走送像造続対袋台弾地中敵転電塔頭動内日入"+
			"年能廃排敗")...)
	infos = append(infos, kanjiEncodeInfo(2, 0x10,
		"発反必表武壁墓放方砲妨北本幕無迷面戻紋薬輸勇友遊容要利了量力練連録話墟脱")...)
	infos = append(infos, kanjiEncodeInfo(2, 0x35, "旗破壊全滅機仲渓谷優探部索")...)
	infos = append(infos, kanjiEncodeInfo(2, 0x43, "前右左会高低押切替")...)
	infos = append(infos, kanjiEncodeInfo(2, 0x4d, "秒箱泳～")...)
	infos = append(infos, kanjiEncodeInfo(2, 0x56, "闇以屋俺化界感気却曲継権見古好")...)
	infos = append(infos, kanjiEncodeInfo(2, 0x66,
		"才士子次主種讐女小焼証神身寸世想退第着天倒到突爆番負復物眠予用落緑")...)
	infos = append(infos, kanjiEncodeInfo(2, 0x88, "封印扉最刻足")...)
	// hangul jamo glyphs
	infos = append(infos, hangulGlyphInfo(1, 0x86, 0x8a)...)
	infos = append(infos, hangulGlyphInfo(3, 0x06, 0xff)...)
	return infos
}

func jak2ReplaceInfo() []ReplaceInfo {
	infos := []ReplaceInfo{
		// ring, cedilla
		{"A~Y~-21H~-5Vº~Z", "Å"},
		{"N~Y~-6Hº~Z~+10H", "Nº"},
		{"~+4Vç~-4V", ",c"},

		// tildes
		{"N~Y~-22H~-4V<TIL>~Z", "Ñ"},
		{"n~Y~-24H~-4V<TIL>~Z", "ñ"},
		{"A~Y~-21H~-5V<TIL>~Z", "Ã"},
		{"O~Y~-22H~-4V<TIL>~Z", "Õ"},

		// acute accents
		{"A~Y~-21H~-5V'~Z", "Á"},
		{"A~Y~-26H~-8V'~Z", "<Á_V2>"}, // same letter, second offset variant
		{"a~Y~-25H~-5V'~Z", "á"},
		{"E~Y~-23H~-9V'~Z", "É"},
		{"e~Y~-26H~-5V'~Z", "é"},
		{"I~Y~-19H~-5V'~Z", "Í"},
		{"i~Y~-19H~-8V'~Z", "í"},
		{"O~Y~-22H~-4V'~Z", "Ó"},
		{"o~Y~-26H~-4V'~Z", "ó"},
		{"U~Y~-24H~-3V'~Z", "Ú"},
		{"u~Y~-24H~-3V'~Z", "ú"},

		// circumflex
		{"A~Y~-20H~-4V^~Z", "Â"},
		{"a~Y~-24H~-5V^~Z", "â"},
		{"E~Y~-20H~-5V^~Z", "Ê"},
		{"e~Y~-25H~-4V^~Zt", "ê"},
		{"I~Y~-19H~-5V^~Z", "Î"},
		{"i~Y~-19H~-8V^~Z", "î"},
		{"O~Y~-20H~-4V^~Z", "Ô"},
		{"o~Y~-25H~-4V^~Z", "ô"},
		{"U~Y~-24H~-3V^~Z", "Û"},
		{"u~Y~-23H~-3V^~Z", "û"},

		// grave accents
		{"A~Y~-26H~-8V`~Z", "À"},
		{"a~Y~-25H~-5V`~Z", "à"},
		{"E~Y~-23H~-9V`~Z", "È"},
		{"e~Y~-26H~-5V`~Z", "è"},
		{"I~Y~-19H~-5V`~Z", "Ì"},
		{"i~Y~-19H~-8V`~Z", "ì"},
		{"O~Y~-22H~-4V`~Z", "Ò"},
		{"o~Y~-26H~-4V`~Z", "ò"},
		{"U~Y~-24H~-3V`~Z", "Ù"},
		{"u~Y~-24H~-3V`~Z", "ù"},

		// umlaut
		{"A~Y~-26H~-8V¨~Z", "Ä"},
		{"a~Y~-25H~-5V¨~Z", "ä"},
		{"E~Y~-20H~-5V¨~Z", "Ë"},
		{"I~Y~-19H~-5V¨~Z", "Ï"},
		{"O~Y~-26H~-8V¨~Z", "Ö"},
		{"o~Y~-26H~-4V¨~Z", "ö"},
		{"U~Y~-25H~-8V¨~Z", "Ü"},
		{"u~Y~-24H~-3V¨~Z", "ü"},
	}
	infos = append(infos, composeReplaceInfo(dakutenPairs, "゛")...)
	infos = append(infos, composeReplaceInfo(handakutenPairs, "゜")...)
	infos = append(infos, []ReplaceInfo{
		// japanese punctuation
		{",~+8H", "、"},
		{"~+8H ", "　"},

		// controller face buttons
		{"~Y~22L<~Z~Y~27L*~Z~Y~1L>~Z~Y~23L[~Z~+26H", "<PAD_X>"},
		{"~Y~22L<~Z~Y~26L;~Z~Y~1L>~Z~Y~23L[~Z~+26H", "<PAD_TRIANGLE>"},
		{"~Y~22L<~Z~Y~25L@~Z~Y~1L>~Z~Y~23L[~Z~+26H", "<PAD_CIRCLE>"},
		{"~Y~22L<~Z~Y~24L#~Z~Y~1L>~Z~Y~23L[~Z~+26H", "<PAD_SQUARE>"},
		// dpad
		{"~Y~22L<PAD_PART_DPAD_L>~Z~3L~+17H~-13V<PAD_PART_DPAD_U>~Z~22L~+17H~+14V<PAD_PART_DPAD_D>~Z~22L~+32H<PAD_PART_DPAD_R>~Z~+56H",
			"<PAD_DPAD_UP>"},
		{"~Y~22L<PAD_PART_DPAD_L>~Z~3L~+17H~-13V<PAD_PART_DPAD_U>~Z~3L~+17H~+14V<PAD_PART_DPAD_D>~Z~22L~+32H<PAD_PART_DPAD_R>~Z~+56H",
			"<PAD_DPAD_DOWN>"},
		{"~Y~22L<PAD_PART_DPAD_L>~Z~22L~+17H~-13V<PAD_PART_DPAD_U>~Z~22L~+17H~+14V<PAD_PART_DPAD_D>~Z~22L~+32H<PAD_PART_DPAD_R>~Z~+56H",
			"<PAD_DPAD_ANY>"},
		// shoulder buttons
		{"~Y~22L~-2H~-12V<PAD_PART_SHOULDER_TOP_LEFT><PAD_PART_SHOULDER_TOP_RIGHT>~Z~22L~-2H~+17V<PAD_PART_SHOULDER_BOTTOM_LEFT><PAD_PART_SHOULDER_BOTTOM_RIGHT>~Z~1L~+4H~+3V<PAD_PART_L1_NAME>~Z~+38H",
			"<PAD_L1>"},
		{"~Y~22L~-2H~-12V<PAD_PART_SHOULDER_TOP_LEFT><PAD_PART_SHOULDER_TOP_RIGHT>~Z~22L~-2H~+17V<PAD_PART_SHOULDER_BOTTOM_LEFT><PAD_PART_SHOULDER_BOTTOM_RIGHT>~Z~1L~+6H~+3V<PAD_PART_R1_NAME>~Z~+38H",
			"<PAD_R1>"},
		{"~Y~22L~-2H~-6V<PAD_PART_TRIGGER_TOP_LEFT><PAD_PART_TRIGGER_TOP_RIGHT>~Z~22L~-2H~+16V<PAD_PART_TRIGGER_BOTTOM_LEFT><PAD_PART_TRIGGER_BOTTOM_RIGHT>~Z~1L~+5H~-2V<PAD_PART_R2_NAME>~Z~+38H",
			"<PAD_R2>"},
		{"~Y~22L~-2H~-6V<PAD_PART_TRIGGER_TOP_LEFT><PAD_PART_TRIGGER_TOP_RIGHT>~Z~22L~-2H~+16V<PAD_PART_TRIGGER_BOTTOM_LEFT><PAD_PART_TRIGGER_BOTTOM_RIGHT>~Z~1L~+5H~-2V<PAD_PART_L2_NAME>~Z~+38H",
			"<PAD_L2>"},
		// analog stick
		{"~1L~+8H~Y<PAD_PART_STICK>~Z~6L~-16H<PAD_PART_STICK_LEFT>~Z~+16h~6L<PAD_PART_STICK_RIGHT>~Z~6L~-15V<PAD_PART_STICK_DOWN>~Z~+13V~6L<PAD_PART_STICK_UP>~Z~-10H~+9V~6L<PAD_PART_STICK_UP_LEFT>~Z~+10H~+9V~6L<PAD_PART_STICK_UP_RIGHT>~Z~-10H~-11V~6L<PAD_PART_STICK_DOWN_LEFT>~Z~+10H~-11V~6L<PAD_PART_STICK_DOWN_RIGHT>~Z~+32H",
			"<PAD_ANALOG_ANY>"},
		{"~Y~1L~+8H<PAD_PART_STICK>~Z~6L~-8H<PAD_PART_STICK_LEFT>~Z~+24H~6L<PAD_PART_STICK_RIGHT>~Z~+40H",
			"<PAD_ANALOG_LEFT_RIGHT>"},
		{"~Y~1L<PAD_PART_STICK>~Z~6L~-15V<PAD_PART_STICK_DOWN>~Z~+13V~6L<PAD_PART_STICK_UP>~Z~+26H",
			"<PAD_ANALOG_UP_DOWN>"},

		// icons
		{"~Y~6L<~Z~Y~1L>~Z~Y~23L[~Z~+26H", "<ICON_MISSION_COMPLETE>"},
		{"~Y~3L<~Z~Y~1L>~Z~Y~23L[~Z~+26H", "<ICON_MISSION_TODO>"},

		// flags
		{"~Y~6L<FLAG_PART_VERT_STRIPE_LARGE>~Z~+15H~1L<FLAG_PART_VERT_STRIPE_LARGE>~Z~+30H~3L<FLAG_PART_VERT_STRIPE_LARGE>~Z~+45H",
			"<FLAG_ITALIAN>"},
		{"~Y~5L<FLAG_PART_FILL>~Z~3L<FLAG_PART_TOP_BOTTOM_STRIPE>~]~-1H~Y~5L<FLAG_PART_FILL>~Z~3L<FLAG_PART_TOP_BOTTOM_STRIPE>~Z~+26H",
			"<FLAG_SPAIN>"},
		{"~Y~39L~~~Z~3L<FLAG_PART_HORZ_STRIPE_MIDDLE>~Z~5L<FLAG_PART_HORZ_STRIPE_BOTTOM>~]~-1H~Y~39L~~~Z~3L<FLAG_PART_HORZ_STRIPE_MIDDLE>~Z~5L<FLAG_PART_HORZ_STRIPE_BOTTOM>~Z~+26H",
			"<FLAG_GERMAN>"},
		{"~Y~7L<FLAG_PART_VERT_STRIPE_LARGE>~Z~+15H~1L<FLAG_PART_VERT_STRIPE_LARGE>~Z~+30H~3L<FLAG_PART_VERT_STRIPE_LARGE>~Z~+47H",
			"<FLAG_FRANCE>"},
		{"~Y~1L<FLAG_PART_FILL>~Z~3L<FLAG_PART_UK_CROSS_LEFT>~Z~7L<FLAG_PART_UK_FILL_LEFT>~]~-1H~Y~1L<FLAG_PART_FILL>~Z~3L<FLAG_PART_UK_CROSS_RIGHT>~Z~7L<FLAG_PART_UK_FILL_RIGHT>~Z~+26H",
			"<FLAG_UK>"},
		{"~Y~1L<FLAG_PART_FILL>~Z~3L<FLAG_PART_USA_STRIPES_LEFT>~Z~7L<FLAG_PART_USA_STARS>~]~-1H~Y~1L<FLAG_PART_FILL>~Z~3L<FLAG_PART_USA_STRIPES_RIGHT>~Z~+26H",
			"<FLAG_USA>"},
		{"~Y~1L<FLAG_PART_FILL>~Z~39L<FLAG_PART_KOREA_TRIGRAMS_LEFT>~]~-1H~Y~1L<FLAG_PART_FILL>~Z~39L<FLAG_PART_KOREA_TRIGRAMS_RIGHT>~Z~-11H~7L<FLAG_PART_KOREA_CIRCLE_FILL>~Z~-11H~3L<FLAG_PART_KOREA_CIRCLE_TOP>~Z~+26H",
			"<FLAG_KOREA>"},
		{"~Y~1L<FLAG_PART_FILL>~]~-1H~Y~1L<FLAG_PART_FILL>~Z~-11H~3L<FLAG_PART_JAPAN_SUN>~Z~+26H",
			"<FLAG_JAPAN>"},

		// descenders are drawn shifted down
		{"~+7Vp~-7V", "p"},
		{"~+7Vy~-7V", "y"},
		{"~+7Vg~-7V", "g"},
		{"~+7Vq~-7V", "q"},
		{"~+1Vj~-1V", "j"},

		// two literal backslashes: only visible after escape emission
		{`\\`, "~%"},

		// symbols and ligatures
		{"~-4H~-3V<SOMETHING>~+3V~-4H", "<SUPERSCRIPT_QUOTE>"},
		{"~Y~-6Hº~Z~+10H", "°"},

		// color and emphasis
		{"~[~1L", "<COLOR_WHITE>"},
		{"~[~32L", "<COLOR_DEFAULT>"},
	}...)
	return infos
}

func init() {
	registerBank(NewFontBank(Jak2, Caps{AllowLowercase: true}, jak2EncodeInfo(), jak2ReplaceInfo(), jak2Passthrus))
}
