package fontbank

// The four lookups below share the same contract: return the rule whose
// pattern is the longest full match at the given offset, or nil when no
// rule matches. A pattern never matches past the end of the input. Ties
// between equal-length patterns resolve to the first rule in table order
// (tables are sorted longest-first with a stable sort, so a scan keeps
// the first maximal match it finds).

// findEncodeToUTF8 matches encode rules by their byte sequence.
func (b *FontBank) findEncodeToUTF8(data []byte, off int) *EncodeInfo {
	var best *EncodeInfo
	for i := range b.encodeInfo {
		info := &b.encodeInfo[i]
		if len(info.Bytes) == 0 || !matchBytes(data, off, info.Bytes) {
			continue
		}
		if best == nil || len(info.Bytes) > len(best.Bytes) {
			best = info
		}
	}
	return best
}

// findEncodeToGame matches encode rules by their character sequence.
func (b *FontBank) findEncodeToGame(text string, off int) *EncodeInfo {
	var best *EncodeInfo
	for i := range b.encodeInfo {
		info := &b.encodeInfo[i]
		if len(info.Chars) == 0 || !matchString(text, off, info.Chars) {
			continue
		}
		if best == nil || len(info.Chars) > len(best.Chars) {
			best = info
		}
	}
	return best
}

// findReplaceToUTF8 matches replace rules by their encoded form.
func (b *FontBank) findReplaceToUTF8(text string, off int) *ReplaceInfo {
	var best *ReplaceInfo
	for i := range b.replaceInfo {
		info := &b.replaceInfo[i]
		if len(info.From) == 0 || !matchString(text, off, info.From) {
			continue
		}
		if best == nil || len(info.From) > len(best.From) {
			best = info
		}
	}
	return best
}

// findReplaceToGame matches replace rules by their display form.
func (b *FontBank) findReplaceToGame(text string, off int) *ReplaceInfo {
	var best *ReplaceInfo
	for i := range b.replaceInfo {
		info := &b.replaceInfo[i]
		if len(info.To) == 0 || !matchString(text, off, info.To) {
			continue
		}
		if best == nil || len(info.To) > len(best.To) {
			best = info
		}
	}
	return best
}

func matchBytes(data []byte, off int, pat []byte) bool {
	if off+len(pat) > len(data) {
		return false
	}
	for i := range pat {
		if data[off+i] != pat[i] {
			return false
		}
	}
	return true
}

func matchString(s string, off int, pat string) bool {
	if off+len(pat) > len(s) {
		return false
	}
	return s[off:off+len(pat)] == pat
}
