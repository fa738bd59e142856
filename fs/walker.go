// Package fs provides the filesystem side of the retrieval pipeline:
// corpus walking and safe text decoding.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/beltools/radseek"
)

// Ensure Walker implements radseek.Walker at compile time.
var _ radseek.Walker = (*Walker)(nil)

// Walker enumerates candidate files under a corpus root.
//
// The traversal is lexical depth-first (os.ReadDir returns sorted
// entries), so the sequence is deterministic for a given tree. Symbolic
// links are never followed, neither files nor directories; this is the
// stated cycle-guard policy. Directories that cannot be opened are
// skipped and the walk continues with their siblings.
type Walker struct {
	root       string
	maxDepth   int
	extensions map[string]struct{}
}

// NewWalker creates a Walker for the given corpus root. The root must
// exist and be a directory; anything else is an EINVALID error, fatal to
// starting a query session. Extensions are matched case-insensitively,
// with or without a leading dot.
func NewWalker(root string, maxDepth int, extensions []string) (*Walker, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, radseek.Errorf(radseek.EINVALID, "corpus root %q does not exist", root)
	}
	if !info.IsDir() {
		return nil, radseek.Errorf(radseek.EINVALID, "corpus root %q is not a directory", root)
	}

	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[ext] = struct{}{}
	}

	return &Walker{root: root, maxDepth: maxDepth, extensions: exts}, nil
}

// Walk returns every candidate file under the root whose depth does not
// exceed the configured maximum and whose extension is allowed. Files are
// never opened during the walk.
func (w *Walker) Walk(ctx context.Context) ([]radseek.CandidateFile, error) {
	var files []radseek.CandidateFile
	if err := w.walkDir(ctx, w.root, 0, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// walkDir visits one directory at the given depth. The depth bound is an
// explicit counter threaded through the walk, not call-stack depth, so a
// subtree deeper than maxDepth is pruned before being visited.
func (w *Walker) walkDir(ctx context.Context, dir string, depth int, out *[]radseek.CandidateFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Permission or read error: skip the subtree, not the walk.
		return nil
	}

	for _, entry := range entries {
		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		if entry.IsDir() {
			if depth+1 > w.maxDepth {
				continue
			}
			if err := w.walkDir(ctx, filepath.Join(dir, entry.Name()), depth+1, out); err != nil {
				return err
			}
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		if _, ok := w.extensions[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			continue
		}
		*out = append(*out, radseek.CandidateFile{
			Path:  filepath.Join(dir, entry.Name()),
			Depth: depth,
		})
	}

	return nil
}
