package ioformat

import (
	"os"
	"path/filepath"

	"github.com/katalvlaran/bisbm/apperr"
	"github.com/katalvlaran/bisbm/bigraph"
)

// WorkDir is a scoped temp-file resource owning the edge-list and types
// files handed to the external engine (§5: "Edge list serialized once to a
// temp file per driver instance ... released on driver termination").
// Parallel workers inherit the path by reading WorkDir's fields, not the
// handle, matching §9's "model as a scoped resource" redesign note.
type WorkDir struct {
	Dir       string
	EdgePath  string
	TypesPath string
	NA, NB    int
}

// NewWorkDir creates a fresh temp directory and writes the 1-indexed edge
// list and types file into it, ready for an engine.Exec invocation.
func NewWorkDir(el *bigraph.EdgeList) (*WorkDir, error) {
	dir, err := os.MkdirTemp("", "bisbm-*")
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeResource, "creating engine work dir", err)
	}

	edgePath := filepath.Join(dir, "edges.tsv")
	ef, err := os.Create(edgePath)
	if err != nil {
		os.RemoveAll(dir)
		return nil, apperr.Wrap(apperr.CodeResource, "creating edge-list temp file", err)
	}
	if err := WriteEdgeList1Indexed(ef, el); err != nil {
		ef.Close()
		os.RemoveAll(dir)
		return nil, err
	}
	if err := ef.Close(); err != nil {
		os.RemoveAll(dir)
		return nil, apperr.Wrap(apperr.CodeResource, "closing edge-list temp file", err)
	}

	typesPath := filepath.Join(dir, "types.txt")
	tf, err := os.Create(typesPath)
	if err != nil {
		os.RemoveAll(dir)
		return nil, apperr.Wrap(apperr.CodeResource, "creating types temp file", err)
	}
	if err := WriteTypes(tf, el.NA, el.NB); err != nil {
		tf.Close()
		os.RemoveAll(dir)
		return nil, err
	}
	if err := tf.Close(); err != nil {
		os.RemoveAll(dir)
		return nil, apperr.Wrap(apperr.CodeResource, "closing types temp file", err)
	}

	return &WorkDir{Dir: dir, EdgePath: edgePath, TypesPath: typesPath, NA: el.NA, NB: el.NB}, nil
}

// Close removes the temp directory and everything in it.
func (w *WorkDir) Close() error {
	if err := os.RemoveAll(w.Dir); err != nil {
		return apperr.Wrap(apperr.CodeResource, "removing engine work dir", err)
	}
	return nil
}
