/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pathx

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Equal reports whether two paths resolve to the same absolute location.
func Equal(path1, path2 string) (bool, error) {
	if path1 == "" || path2 == "" {
		return false, fmt.Errorf("path must not be empty")
	}
	absPath1, err := Resolve(path1)
	if err != nil {
		return false, fmt.Errorf("resolving path 1: %w", err)
	}
	absPath2, err := Resolve(path2)
	if err != nil {
		return false, fmt.Errorf("resolving path 2: %w", err)
	}
	return absPath1 == absPath2, nil
}

// Resolve absolutizes p and follows symlinks when the target exists,
// without otherwise altering its meaning.
func Resolve(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", fmt.Errorf("path must not be empty")
	}

	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	} else {
		p = filepath.Clean(p)
	}

	if _, err := os.Lstat(p); err == nil {
		if real, rerr := filepath.EvalSymlinks(p); rerr == nil {
			p = real
		}
	}

	return p, nil
}

// Exists reports whether path exists. A missing path returns (false, nil);
// any other stat failure is returned as an error.
func Exists(path string) (bool, error) {
	if path == "" {
		return false, fmt.Errorf("path must not be empty")
	}
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking path: %w", err)
}

// IsDir reports whether path is a directory. A missing path returns
// (false, nil).
func IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking directory: %w", err)
	}
	return info.IsDir(), nil
}

// Stem returns the last path element with its final extension removed.
// Multi-dotted names only lose the last segment (a.tar.gz -> a.tar); a
// leading-dot dotfile (.gitignore) is left untouched.
func Stem(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", fmt.Errorf("path must not be empty")
	}
	base := filepath.Base(p)
	if base == "." || base == string(os.PathSeparator) {
		return "", fmt.Errorf("path %q has no valid base name", p)
	}

	ext := filepath.Ext(base)
	if ext == "" {
		return base, nil
	}
	if ext == base && strings.HasPrefix(base, ".") {
		return base, nil
	}
	stem := base[:len(base)-len(ext)]
	if stem == "" {
		return base, nil
	}
	return stem, nil
}

// ReadFile reads a file's content and computes its SHA-256 hash.
func ReadFile(path string) ([]byte, string, error) {
	norm, _ := Resolve(path)
	content, err := os.ReadFile(norm)
	if err != nil {
		return nil, "", fmt.Errorf("reading file %s: %w", norm, err)
	}

	sum := sha256.Sum256(content)
	return content, hex.EncodeToString(sum[:]), nil
}

// WalkDir walks a directory and filters entries by depth and extension.
//   - maxDepth: -1 unbounded; 0 root files only; 1 root + one level, ...
//   - extensions: allowed extensions (case-insensitive, dot optional)
//
// Returns an absolute, resolved, stably sorted file list when sortResult
// is set.
func WalkDir(root string, maxDepth int, sortResult bool, extensions []string) ([]string, error) {
	nRoot, err := Resolve(root)
	if err != nil {
		return nil, err
	}

	exist, err := Exists(nRoot)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, fmt.Errorf("root path does not exist: %s", nRoot)
	}
	if ok, err := IsDir(nRoot); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("root path is not a directory: %s", nRoot)
	}

	allowedSlice := normalizeExts(extensions)
	allowed := make(map[string]struct{}, len(allowedSlice))
	for _, e := range allowedSlice {
		allowed[e] = struct{}{}
	}
	filterEnabled := len(allowed) > 0

	type node struct {
		path  string
		depth int
	}
	stack := []node{{path: nRoot, depth: 0}}
	files := make([]string, 0, 128)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if maxDepth >= 0 && current.depth > maxDepth {
			continue
		}
		entries, readErr := os.ReadDir(current.path)
		if readErr != nil {
			return nil, fmt.Errorf("reading directory %s: %w", current.path, readErr)
		}
		for _, entry := range entries {
			fullPath := filepath.Join(current.path, entry.Name())
			if entry.IsDir() {
				if maxDepth < 0 || current.depth < maxDepth {
					stack = append(stack, node{path: fullPath, depth: current.depth + 1})
				}
				continue
			}

			if !filterEnabled || hasAllowedExt(entry.Name(), allowed) {
				files = append(files, fullPath)
			}
		}
	}
	if sortResult {
		stablePathSort(files)
	}
	return files, nil
}

func hasAllowedExt(name string, allowed map[string]struct{}) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := allowed[ext]
	return ok
}

func stablePathSort(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		ai := strings.ToLower(paths[i])
		aj := strings.ToLower(paths[j])
		if ai == aj {
			return paths[i] < paths[j]
		}
		return ai < aj
	})
}

func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, strings.ToLower(e))
	}
	return out
}

// CollectFiles expands a mix of file and directory inputs into a flat,
// deduplicated file list, applying an optional extension filter to both
// standalone files and directory recursion.
//   - inputs: file or directory paths, possibly relative or duplicated
//   - maxDepth: same meaning as WalkDir
//   - extensions: allowed extensions; empty means no filtering
//   - sortResult: stable, case-insensitive sort of the result
//
// Non-existent inputs are silently skipped rather than treated as errors.
func CollectFiles(inputs []string, maxDepth int, extensions []string, sortResult bool) ([]string, error) {
	normExts := normalizeExts(extensions)
	allowed := make(map[string]struct{}, len(normExts))
	for _, e := range normExts {
		allowed[e] = struct{}{}
	}
	filterEnabled := len(allowed) > 0

	resultSet := make(map[string]struct{}, 256)

	for _, in := range inputs {
		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		resolved, err := Resolve(in)
		if err != nil {
			return nil, fmt.Errorf("resolving path %q: %w", in, err)
		}
		exists, err := Exists(resolved)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}
		isDir, err := IsDir(resolved)
		if err != nil {
			return nil, err
		}
		if isDir {
			files, werr := WalkDir(resolved, maxDepth, false, extensions)
			if werr != nil {
				return nil, werr
			}
			for _, f := range files {
				resultSet[f] = struct{}{}
			}
			continue
		}
		name := filepath.Base(resolved)
		if !filterEnabled || hasAllowedExt(name, allowed) {
			resultSet[resolved] = struct{}{}
		}
	}

	out := make([]string, 0, len(resultSet))
	for p := range resultSet {
		out = append(out, p)
	}
	if sortResult {
		stablePathSort(out)
	}
	return out, nil
}
