// Package fontbank converts text between readable UTF-8 and the
// proprietary byte-oriented font encodings used by the game's text
// resources. Each game version defines its own glyph codes, composite
// character constructs and escape conventions; a FontBank holds the
// mapping tables for one version and transcodes strings in both
// directions using greedy longest-match rules.
package fontbank

import (
	"sort"

	"github.com/yoremi/fontbank-go/pkg/config"
)

// Version identifies a game text encoding generation.
type Version int

const (
	Jak1V1 Version = iota // black label release
	Jak1V2                // PAL, NTSC-U v2 and japanese releases
	Jak2
)

func (v Version) String() string {
	switch v {
	case Jak1V1:
		return "jak1-v1"
	case Jak1V2:
		return "jak1-v2"
	case Jak2:
		return "jak2"
	default:
		return "[unknown]"
	}
}

// ParseVersion returns the version registered under the given name.
func ParseVersion(name string) (Version, error) {
	switch name {
	case "jak1-v1":
		return Jak1V1, nil
	case "jak1-v2":
		return Jak1V2, nil
	case "jak2":
		return Jak2, nil
	}
	return 0, &UnknownVersionError{Name: name}
}

// EncodeInfo maps a game font byte sequence to the displayed character
// sequence it draws (typically a single glyph).
type EncodeInfo struct {
	Chars string
	Bytes []byte
}

// ReplaceInfo maps an encoded substring spanning several glyph codes to a
// display substring, e.g. an accented letter assembled from a base letter
// plus repositioned diacritic draw commands.
type ReplaceInfo struct {
	From string // encoded form
	To   string // display form
}

// Caps holds the per-version behavior toggles that are fixed at bank
// construction time.
type Caps struct {
	// AllowLowercase admits a-z as literal characters in display text.
	// Banks without it render lowercase bytes as \cXX escapes.
	AllowLowercase bool
}

// FontBank holds the mapping tables for one game version. All fields are
// immutable after construction, so a bank may be shared freely between
// goroutines.
type FontBank struct {
	version     Version
	caps        Caps
	encodeInfo  []EncodeInfo
	replaceInfo []ReplaceInfo
	passthrus   map[byte]bool
}

// NewFontBank builds a bank from mapping tables. Both tables are sorted
// longest-pattern-first; the sort is stable so equal-length rules keep
// their table order, which keeps longest-match ties deterministic.
func NewFontBank(version Version, caps Caps, encodeInfo []EncodeInfo, replaceInfo []ReplaceInfo, passthrus []byte) *FontBank {
	b := &FontBank{
		version:     version,
		caps:        caps,
		encodeInfo:  append([]EncodeInfo(nil), encodeInfo...),
		replaceInfo: append([]ReplaceInfo(nil), replaceInfo...),
		passthrus:   make(map[byte]bool, len(passthrus)),
	}
	for _, c := range passthrus {
		b.passthrus[c] = true
	}
	sort.SliceStable(b.encodeInfo, func(i, j int) bool {
		return len(b.encodeInfo[i].Bytes) > len(b.encodeInfo[j].Bytes)
	})
	sort.SliceStable(b.replaceInfo, func(i, j int) bool {
		return len(b.replaceInfo[i].From) > len(b.replaceInfo[j].From)
	})
	return b
}

// Version returns the bank's text version.
func (b *FontBank) Version() Version {
	return b.version
}

// --- Bank registry ---

var fontBanks = make(map[Version]*FontBank)

func registerBank(b *FontBank) {
	fontBanks[b.version] = b
}

// GetFontBank returns the bank for a version.
func GetFontBank(v Version) (*FontBank, error) {
	b, ok := fontBanks[v]
	if !ok {
		return nil, &UnknownVersionError{Name: v.String()}
	}
	return b, nil
}

// GetFontBankByName returns the bank registered under the given name.
func GetFontBankByName(name string) (*FontBank, error) {
	v, err := ParseVersion(name)
	if err != nil {
		return nil, err
	}
	return GetFontBank(v)
}

// DefaultFontBank returns the bank for the process-wide default text
// version (see package config).
func DefaultFontBank() (*FontBank, error) {
	return GetFontBankByName(config.TextVersion())
}
