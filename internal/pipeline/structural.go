/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

// StructuralScore is the outcome of one multi-byte structural probe.
type StructuralScore struct {
	Score         float64 // valid_pairs / lead_bytes_seen
	ByteCoverage  float64 // non-ASCII bytes inside valid sequences / total non-ASCII bytes
	LeadDiversity int     // distinct lead-byte values that started a valid sequence
}

// ShortCircuitThreshold is the structural score above which a multi-byte
// candidate short-circuits single-byte scoring for ranking purposes
// (single-byte candidates are still scored and merged into the result set).
const ShortCircuitThreshold = 0.85

type structuralScorer func(data []byte) StructuralScore

var structuralScorers = map[string]structuralScorer{
	"shift_jis":   scoreShiftJIS,
	"cp932":       scoreShiftJIS,
	"euc-jp":      scoreEUCJP,
	"euc-kr":      scoreEUCKR,
	"cp949":       scoreEUCKR,
	"gb18030":     scoreGB18030,
	"gb2312":      scoreGB18030,
	"big5":        scoreBig5,
	"johab":       scoreJohab,
	"iso-2022-jp": scoreEscapeStyle([]byte{0x1B, '$'}),
	"iso-2022-kr": scoreEscapeStyle([]byte{0x1B, '$', ')'}),
	"hz-gb-2312":  scoreEscapeStyle([]byte("~{")),
}

// ComputeStructuralScore dispatches to the scorer registered for name, or
// the zero value if name has none.
func ComputeStructuralScore(name string, data []byte) StructuralScore {
	if scorer, ok := structuralScorers[name]; ok {
		return scorer(data)
	}
	return StructuralScore{}
}

func inRange(b, lo, hi byte) bool { return b >= lo && b <= hi }

type leadTrailCounter struct {
	leadBytes    int
	validPairs   int
	nonASCII     int
	coveredBytes int
	leadSet      map[byte]bool
}

func newLeadTrailCounter() *leadTrailCounter {
	return &leadTrailCounter{leadSet: make(map[byte]bool)}
}

func (c *leadTrailCounter) finish() StructuralScore {
	score := 0.0
	if c.leadBytes > 0 {
		score = float64(c.validPairs) / float64(c.leadBytes)
	}
	coverage := 0.0
	if c.nonASCII > 0 {
		coverage = float64(c.coveredBytes) / float64(c.nonASCII)
	}
	return StructuralScore{Score: score, ByteCoverage: coverage, LeadDiversity: len(c.leadSet)}
}

func countNonASCII(data []byte) int {
	n := 0
	for _, b := range data {
		if b > 0x7F {
			n++
		}
	}
	return n
}

// scoreShiftJIS: lead 0x81..0x9F | 0xE0..0xEF, trail 0x40..0x7E | 0x80..0xFC.
func scoreShiftJIS(data []byte) StructuralScore {
	c := newLeadTrailCounter()
	c.nonASCII = countNonASCII(data)
	for i := 0; i < len(data); {
		b := data[i]
		if !(inRange(b, 0x81, 0x9F) || inRange(b, 0xE0, 0xEF)) {
			i++
			continue
		}
		c.leadBytes++
		c.leadSet[b] = true
		if i+1 < len(data) {
			t := data[i+1]
			if inRange(t, 0x40, 0x7E) || inRange(t, 0x80, 0xFC) {
				c.validPairs++
				c.coveredBytes += 2
				i += 2
				continue
			}
		}
		i++
	}
	return c.finish()
}

// scoreEUCJP: 0x8E+A1..DF (2-byte kana); 0x8F+A1..FE+A1..FE (3-byte); A1..FE+A1..FE.
func scoreEUCJP(data []byte) StructuralScore {
	c := newLeadTrailCounter()
	c.nonASCII = countNonASCII(data)
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b == 0x8E:
			c.leadBytes++
			c.leadSet[b] = true
			if i+1 < len(data) && inRange(data[i+1], 0xA1, 0xDF) {
				c.validPairs++
				c.coveredBytes += 2
				i += 2
				continue
			}
			i++
		case b == 0x8F:
			c.leadBytes++
			c.leadSet[b] = true
			if i+2 < len(data) && inRange(data[i+1], 0xA1, 0xFE) && inRange(data[i+2], 0xA1, 0xFE) {
				c.validPairs++
				c.coveredBytes += 3
				i += 3
				continue
			}
			i++
		case inRange(b, 0xA1, 0xFE):
			c.leadBytes++
			c.leadSet[b] = true
			if i+1 < len(data) && inRange(data[i+1], 0xA1, 0xFE) {
				c.validPairs++
				c.coveredBytes += 2
				i += 2
				continue
			}
			i++
		default:
			i++
		}
	}
	return c.finish()
}

// scoreEUCKR: A1..FE + A1..FE.
func scoreEUCKR(data []byte) StructuralScore {
	c := newLeadTrailCounter()
	c.nonASCII = countNonASCII(data)
	for i := 0; i < len(data); {
		b := data[i]
		if !inRange(b, 0xA1, 0xFE) {
			i++
			continue
		}
		c.leadBytes++
		c.leadSet[b] = true
		if i+1 < len(data) && inRange(data[i+1], 0xA1, 0xFE) {
			c.validPairs++
			c.coveredBytes += 2
			i += 2
			continue
		}
		i++
	}
	return c.finish()
}

// scoreGB18030: strict 2-byte A1..F7+A1..FE, or 4-byte 81..FE+30..39+81..FE+30..39.
// The permissive GBK 2-byte range is intentionally excluded.
func scoreGB18030(data []byte) StructuralScore {
	c := newLeadTrailCounter()
	c.nonASCII = countNonASCII(data)
	for i := 0; i < len(data); {
		b := data[i]
		if !inRange(b, 0x81, 0xFE) {
			i++
			continue
		}
		c.leadBytes++
		c.leadSet[b] = true
		if i+3 < len(data) && inRange(b, 0x81, 0xFE) && inRange(data[i+1], 0x30, 0x39) &&
			inRange(data[i+2], 0x81, 0xFE) && inRange(data[i+3], 0x30, 0x39) {
			c.validPairs++
			c.coveredBytes += 4
			i += 4
			continue
		}
		if inRange(b, 0xA1, 0xF7) && i+1 < len(data) && inRange(data[i+1], 0xA1, 0xFE) {
			c.validPairs++
			c.coveredBytes += 2
			i += 2
			continue
		}
		i++
	}
	return c.finish()
}

// scoreBig5: lead A1..F9, trail 40..7E | A1..FE.
func scoreBig5(data []byte) StructuralScore {
	c := newLeadTrailCounter()
	c.nonASCII = countNonASCII(data)
	for i := 0; i < len(data); {
		b := data[i]
		if !inRange(b, 0xA1, 0xF9) {
			i++
			continue
		}
		c.leadBytes++
		c.leadSet[b] = true
		if i+1 < len(data) {
			t := data[i+1]
			if inRange(t, 0x40, 0x7E) || inRange(t, 0xA1, 0xFE) {
				c.validPairs++
				c.coveredBytes += 2
				i += 2
				continue
			}
		}
		i++
	}
	return c.finish()
}

// scoreJohab: lead 84..D3 | D8..DE | E0..F9, trail 31..7E | 91..FE.
func scoreJohab(data []byte) StructuralScore {
	c := newLeadTrailCounter()
	c.nonASCII = countNonASCII(data)
	for i := 0; i < len(data); {
		b := data[i]
		if !(inRange(b, 0x84, 0xD3) || inRange(b, 0xD8, 0xDE) || inRange(b, 0xE0, 0xF9)) {
			i++
			continue
		}
		c.leadBytes++
		c.leadSet[b] = true
		if i+1 < len(data) {
			t := data[i+1]
			if inRange(t, 0x31, 0x7E) || inRange(t, 0x91, 0xFE) {
				c.validPairs++
				c.coveredBytes += 2
				i += 2
				continue
			}
		}
		i++
	}
	return c.finish()
}

// scoreEscapeStyle builds a scorer for the ESC/tilde family: count marker
// occurrences vs. occurrences immediately followed by a valid designator.
func scoreEscapeStyle(marker []byte) structuralScorer {
	return func(data []byte) StructuralScore {
		c := newLeadTrailCounter()
		c.nonASCII = countNonASCII(data)
		for i := 0; i+len(marker) <= len(data); i++ {
			match := true
			for k, m := range marker {
				if data[i+k] != m {
					match = false
					break
				}
			}
			if !match {
				continue
			}
			c.leadBytes++
			c.leadSet[marker[0]] = true
			if i+len(marker) < len(data) {
				d := data[i+len(marker)]
				if inRange(d, 0x21, 0x7E) {
					c.validPairs++
					c.coveredBytes += len(marker) + 1
				}
			}
			i += len(marker) - 1
		}
		return c.finish()
	}
}
