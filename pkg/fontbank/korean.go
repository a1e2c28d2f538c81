package fontbank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/golang/glog"
)

// Control bytes of the korean text format. Hangul syllables are stored as
// control-byte-delimited blocks of jamo glyph codes rather than fixed
// byte-to-glyph mappings.
const (
	koreanLiteralRun = 3 // opens an ASCII run; also terminates a glyph block
	koreanTerminator = 4
	koreanAltTier    = 5 // prefixes a glyph code from the alternate tier
)

// decodeKoreanText lowers the korean control-byte format onto a uniform
// glyph-code stream: every jamo sub-code is re-emitted as a two-byte
// (tier, payload) pair so the byte decoder can treat hangul like any
// other multi-byte glyph. A glyph block consists of a marker byte, a
// length byte and sub-codes running until the next control byte.
func decodeKoreanText(data []byte, seqs *SeqCollector) []byte {
	out := make([]byte, 0, len(data)*2)
	i := 0
	for i < len(data) {
		if data[i] == koreanLiteralRun {
			i++
			for i < len(data) && data[i] != koreanLiteralRun && data[i] != koreanTerminator {
				out = append(out, data[i])
				i++
			}
			continue
		}
		i++ // block marker
		if i >= len(data) {
			break
		}
		i++ // length byte; the block really ends at the next control byte
		var seq uint64
		n := 0
		for i < len(data) && data[i] != koreanLiteralRun && data[i] != koreanTerminator {
			tier := byte(0x03)
			code := uint64(0x300)
			if data[i] == koreanAltTier {
				i++
				if i >= len(data) {
					break
				}
				tier = 0x01
				code = 0x100
			}
			if n < 4 {
				seq |= (code | uint64(data[i])) << (n * 16)
			}
			out = append(out, tier, data[i])
			i++
			n++
		}
		seqs.add(seq)
	}
	return out
}

// SeqCollector accumulates the distinct jamo sequences observed by the
// korean pre-pass, for offline analysis of which glyph combinations a
// font actually needs. It is optional instrumentation: a nil collector is
// a no-op. Use one collector per conversion batch; the transcoding core
// itself keeps no state.
type SeqCollector struct {
	seqs []uint64
}

func (c *SeqCollector) add(seq uint64) {
	if c == nil || seq == 0 {
		return
	}
	i := sort.Search(len(c.seqs), func(i int) bool { return c.seqs[i] >= seq })
	if i < len(c.seqs) && c.seqs[i] == seq {
		return
	}
	c.seqs = append(c.seqs, 0)
	copy(c.seqs[i+1:], c.seqs[i:])
	c.seqs[i] = seq
}

// Seqs returns the collected sequences in ascending order. Each uint64
// packs up to four 16-bit jamo codes, lowest position first.
func (c *SeqCollector) Seqs() []uint64 {
	if c == nil {
		return nil
	}
	return append([]uint64(nil), c.seqs...)
}

// JamoByPosition returns the distinct jamo codes seen at each of the four
// block positions, each list sorted ascending.
func (c *SeqCollector) JamoByPosition() [4][]uint16 {
	var byPos [4][]uint16
	if c == nil {
		return byPos
	}
	for _, seq := range c.seqs {
		for p := 0; p < 4; p++ {
			v := uint16(seq >> (p * 16))
			if v == 0 {
				break
			}
			byPos[p] = appendUniqueU16(byPos[p], v)
		}
	}
	for p := range byPos {
		sort.Slice(byPos[p], func(i, j int) bool { return byPos[p][i] < byPos[p][j] })
	}
	return byPos
}

// Report logs the collected jamo inventory at verbosity 2.
func (c *SeqCollector) Report() {
	if c == nil || len(c.seqs) == 0 || !glog.V(2) {
		return
	}
	glog.V(2).Infof("korean glyph sequences: %d distinct", len(c.seqs))
	for p, jamo := range c.JamoByPosition() {
		parts := make([]string, len(jamo))
		for i, v := range jamo {
			parts[i] = fmt.Sprintf("0x%x", v)
		}
		glog.V(2).Infof("jamo at position %d: %s", p+1, strings.Join(parts, " "))
	}
}

func appendUniqueU16(list []uint16, v uint16) []uint16 {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
