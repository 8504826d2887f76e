/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "chardetect/internal/registry"

// ApplyLegacyRename replaces r's encoding with its preferred superset name
// when renaming is requested. Confidence and language are untouched.
func ApplyLegacyRename(r Result, shouldRename bool) Result {
	if !shouldRename || r.IsNegative() {
		return r
	}
	r.Encoding = registry.ApplyLegacyRename(r.Encoding)
	return r
}
