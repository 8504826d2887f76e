/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "chardetect/internal/bigrammodel"

// ResolveConfusionGroups inspects the top two results; if their encodings
// form a known confusion pair, applies the hybrid category-vote /
// bigram-rescore rule to decide the winner. If the winner isn't already in
// position 0, it's swapped there and the displaced result moves to
// position 1. Results beyond the top two are left untouched.
func ResolveConfusionGroups(data []byte, results []Result) []Result {
	if len(results) < 2 {
		return results
	}
	top, second := results[0], results[1]
	if top.Encoding == "" || second.Encoding == "" {
		return results
	}

	confusion := bigrammodel.LoadConfusion()
	entry, ok := confusion.Lookup(top.Encoding, second.Encoding)
	if !ok {
		return results
	}

	categoryWinner := resolveByCategoryVoting(data, entry)
	bigramWinner := resolveByBigramRescore(data, entry)

	var winner string
	switch {
	case categoryWinner != "" && categoryWinner == bigramWinner:
		winner = categoryWinner
	case bigramWinner != "":
		winner = bigramWinner
	default:
		winner = categoryWinner
	}

	if winner == "" || winner == top.Encoding {
		return results
	}
	if winner == second.Encoding {
		out := append([]Result(nil), results...)
		out[0], out[1] = out[1], out[0]
		return out
	}
	return results
}

// resolveByCategoryVoting sums, for every distinguishing byte that actually
// appears in data, the positive difference in category preference between
// the two encodings; the higher total wins. Returns "" on a tie or if no
// distinguishing byte appears.
func resolveByCategoryVoting(data []byte, entry bigrammodel.ConfusionEntry) string {
	present := make(map[byte]bool, len(entry.Distinguishing))
	for _, b := range data {
		present[b] = true
	}

	scoreA, scoreB := 0, 0
	for _, d := range entry.Distinguishing {
		if !present[d.Value] {
			continue
		}
		prefA := bigrammodel.CategoryPreference(bigrammodel.CategoryName(d.CategoryA))
		prefB := bigrammodel.CategoryPreference(bigrammodel.CategoryName(d.CategoryB))
		if prefA > prefB {
			scoreA += prefA - prefB
		} else if prefB > prefA {
			scoreB += prefB - prefA
		}
	}
	switch {
	case scoreA > scoreB:
		return entry.EncodingA
	case scoreB > scoreA:
		return entry.EncodingB
	default:
		return ""
	}
}

// resolveByBigramRescore builds a focused bigram profile over only the
// distinguishing bytes and rescopes both candidates against it.
func resolveByBigramRescore(data []byte, entry bigrammodel.ConfusionEntry) string {
	store := bigrammodel.LoadModels()
	distinguishing := entry.DistinguishingBytes()

	scoreA := store.ScoreEncodingFiltered(data, entry.EncodingA, distinguishing)
	scoreB := store.ScoreEncodingFiltered(data, entry.EncodingB, distinguishing)
	switch {
	case scoreA > scoreB:
		return entry.EncodingA
	case scoreB > scoreA:
		return entry.EncodingB
	default:
		return ""
	}
}
