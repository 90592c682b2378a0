package query

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aidanlsb/fsq/internal/fileinfo"
)

// Executor runs parsed statements against the filesystem.
type Executor struct {
	eval *Evaluator
}

// NewExecutor creates an executor with a fresh evaluator.
func NewExecutor() *Executor {
	return &Executor{eval: NewEvaluator()}
}

// Execute runs a statement and returns the matched (for SELECT) or
// updated (for UPDATE) entries in traversal order.
func (x *Executor) Execute(stmt Statement) ([]*fileinfo.FileInfo, error) {
	switch s := stmt.(type) {
	case *Select:
		return x.executeSelect(s)
	case *Update:
		return x.executeUpdate(s)
	default:
		return nil, errf(CodeUnsupportedStatement, "unsupported statement %T", stmt)
	}
}

func (x *Executor) executeSelect(s *Select) ([]*fileinfo.FileInfo, error) {
	return x.collect(s.Path, s.Recursive, s.Where)
}

// collect walks the tree under root and returns snapshots of entries
// matching cond. The root itself is not a result. Unreadable sub-entries
// are skipped; a bad root or an evaluation failure aborts the walk.
func (x *Executor) collect(root string, recursive bool, cond Condition) ([]*fileinfo.FileInfo, error) {
	var results []*fileinfo.FileInfo

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("cannot query %s: %w", root, err)
			}
			// Unreadable sub-entry: best-effort listing continues.
			return nil
		}
		if path == root {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// Entry vanished between readdir and stat.
			return nil
		}
		fi := fileinfo.FromStat(path, info)

		ok, err := x.eval.Evaluate(cond, fi)
		if err != nil {
			return err
		}
		if ok {
			results = append(results, fi)
		}

		if !recursive && d.IsDir() {
			return fs.SkipDir
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return results, nil
}

// executeUpdate applies SET assignments to every entry under the path
// that matches the condition. The scan is always recursive. Updates are
// not transactional: on a mid-batch failure the entries already updated
// are returned alongside an error naming the entry that failed.
func (x *Executor) executeUpdate(u *Update) ([]*fileinfo.FileInfo, error) {
	modes, err := validateUpdates(u.Updates)
	if err != nil {
		return nil, err
	}

	matched, err := x.collect(u.Path, true, u.Where)
	if err != nil {
		return nil, err
	}

	var updated []*fileinfo.FileInfo
	for _, fi := range matched {
		for _, upd := range u.Updates {
			if err := os.Chmod(fi.Path, modes[upd.Value]); err != nil {
				return updated, fmt.Errorf("updating %s of %s: %w", upd.Attribute, fi.Path, err)
			}
		}
		// Re-read so results reflect the state after the update.
		fresh, err := fileinfo.FromPath(fi.Path)
		if err != nil {
			return updated, fmt.Errorf("re-reading %s after update: %w", fi.Path, err)
		}
		updated = append(updated, fresh)
	}
	return updated, nil
}

// validateUpdates rejects unsupported SET targets and pre-parses octal
// permission values, so a malformed statement fails before any file is
// touched.
func validateUpdates(updates []AttributeUpdate) (map[string]fs.FileMode, error) {
	if len(updates) == 0 {
		return nil, errf(CodeMissingClause, "missing SET assignments")
	}

	modes := make(map[string]fs.FileMode, len(updates))
	for _, upd := range updates {
		switch upd.Attribute {
		case AttrPermissions:
			bits, err := strconv.ParseUint(upd.Value, 8, 32)
			if err != nil || bits > 0o777 {
				return nil, errf(CodeTypeError, "invalid permissions value %q: expected octal like 644", upd.Value)
			}
			modes[upd.Value] = fs.FileMode(bits)
		case AttrOwner:
			return nil, errf(CodeUnsupportedOperation, "changing file ownership is not supported")
		default:
			return nil, errf(CodeUnsupportedAttribute, "cannot update attribute %s", upd.Attribute)
		}
	}
	return modes, nil
}
