/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "chardetect/internal/registry"

// FilterByValidity attempts a strict decode of data under each candidate's
// Decoder, keeping only those that succeed. A nil Decoder (an encoding the
// registry can't back with a library codec, or one that resolves upstream
// in the escape stage) never survives this filter.
func FilterByValidity(data []byte, candidates []registry.EncodingInfo) []registry.EncodingInfo {
	survivors := make([]registry.EncodingInfo, 0, len(candidates))
	for _, c := range candidates {
		if c.Decoder == nil {
			continue
		}
		dec := c.Decoder.NewDecoder()
		if _, err := dec.Bytes(data); err != nil {
			continue
		}
		survivors = append(survivors, c)
	}
	return survivors
}
