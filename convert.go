// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package edic

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-edic/lexml"
	"github.com/ianlewis/go-edic/record"
)

const (
	// OutputExt is the file extension of converted documents.
	OutputExt = ".html"

	// CompressedExt is appended to OutputExt for dictzip compressed
	// documents.
	CompressedExt = ".dz"
)

// Options are options for converting and loading dictionary sources.
type Options struct {
	// OutDir is the directory converted documents are written to.
	OutDir string

	// Compress indicates that documents should be compressed with dictzip.
	Compress bool

	// Jobs is the maximum number of sources converted at the same time.
	Jobs int

	// Modes maps source names to rendering modes.
	Modes lexml.ModeMap

	// Logger receives diagnostic messages. Nothing is logged if it is nil.
	Logger *slog.Logger

	// Progress is called with the name of each source before it is
	// processed. It must be safe for concurrent use when Jobs > 1.
	Progress func(name string)
}

// DefaultOptions are the default options.
var DefaultOptions = &Options{
	OutDir: ".",
	Jobs:   1,
}

func (o *Options) getOutDir() string {
	if o == nil || o.OutDir == "" {
		return DefaultOptions.OutDir
	}
	return o.OutDir
}

func (o *Options) getJobs() int {
	if o == nil || o.Jobs < 1 {
		return DefaultOptions.Jobs
	}
	return o.Jobs
}

func (o *Options) getModes() lexml.ModeMap {
	if o == nil {
		return nil
	}
	return o.Modes
}

func (o *Options) getLogger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o *Options) progress(name string) {
	if o != nil && o.Progress != nil {
		o.Progress(name)
	}
}

// Result describes a converted source.
type Result struct {
	// Source is the path to the source.
	Source string

	// Output is the path to the converted document.
	Output string

	// Mode is the rendering mode used.
	Mode lexml.Mode

	// Entries is the number of entries written.
	Entries int

	// Empty is the number of rows skipped because of an empty index.
	Empty int

	// Skipped is the number of malformed rows skipped.
	Skipped int
}

// ConvertFile converts the source at path to a document in the output
// directory with the same base name. A malformed index expression stops the
// conversion and no document is written.
func ConvertFile(path string, opts *Options) (*Result, error) {
	name := lexml.SourceName(path)
	res := &Result{
		Source: path,
		Output: filepath.Join(opts.getOutDir(), name+OutputExt),
		Mode:   opts.getModes().Lookup(path),
	}
	if opts != nil && opts.Compress {
		res.Output += CompressedExt
	}

	logger := opts.getLogger().With("source", path, "mode", res.Mode.String())
	logger.Info("converting source", "output", res.Output)

	r, err := record.Open(path)
	if err != nil {
		return nil, fmt.Errorf("converting %q: %w", path, err)
	}
	defer r.Close()

	tmp, err := os.CreateTemp(opts.getOutDir(), "."+name+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("converting %q: %w", path, err)
	}
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if err := tmp.Chmod(0o644); err != nil {
		return nil, fmt.Errorf("converting %q: %w", path, err)
	}

	var out io.Writer = tmp
	var z *dictzip.Writer
	if opts != nil && opts.Compress {
		z, err = dictzip.NewWriter(tmp)
		if err != nil {
			return nil, fmt.Errorf("converting %q: %w", path, err)
		}
		out = z
	}

	w, err := lexml.NewWriter(out, &lexml.WriterOptions{Title: name})
	if err != nil {
		return nil, fmt.Errorf("converting %q: %w", path, err)
	}

	res.Empty, err = render(r, lexml.NewRenderer(res.Mode), logger, w.WriteEntry)
	if err != nil {
		return nil, fmt.Errorf("converting %q: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("converting %q: %w", path, err)
	}
	if z != nil {
		if err := z.Close(); err != nil {
			return nil, fmt.Errorf("converting %q: compressing: %w", path, err)
		}
	}

	// NOTE: the dictzip writer may already have closed the file.
	if err := tmp.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return nil, fmt.Errorf("converting %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), res.Output); err != nil {
		_ = os.Remove(tmp.Name())
		tmp = nil
		return nil, fmt.Errorf("converting %q: %w", path, err)
	}
	tmp = nil

	res.Entries = w.Count()
	res.Skipped = r.Skipped()
	logger.Info("converted source", "entries", res.Entries, "empty", res.Empty, "skipped", res.Skipped)

	return res, nil
}

// ConvertAll converts all sources directly under dir. Subdirectories are not
// searched. Results are returned in file name order along with any errors
// that occurred. A failing source does not stop the others.
func ConvertAll(dir string, opts *Options) ([]*Result, []error) {
	paths, err := sources(dir)
	if err != nil {
		return nil, []error{err}
	}

	results := make([]*Result, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(opts.getJobs())
	for i, path := range paths {
		g.Go(func() error {
			opts.progress(filepath.Base(path))
			results[i], errs[i] = ConvertFile(path, opts)
			return nil
		})
	}
	_ = g.Wait()

	return compact(results), compact(errs)
}

// sources returns the paths of the sources directly under dir in file name
// order.
func sources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !record.IsSource(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// render renders each row of r in order and passes the entries to fn. It
// returns the number of rows that produced no entry.
func render(r *record.Reader, renderer lexml.Renderer, logger *slog.Logger, fn func(*lexml.Entry) error) (int, error) {
	var empty int
	for r.Scan() {
		row := r.Row()
		e, err := renderer.Render(row)
		if err != nil {
			return empty, fmt.Errorf("line %d: %w", row.Line, err)
		}
		if e == nil {
			logger.Debug("skipping row with empty index", "line", row.Line, "id", row.ID)
			empty++
			continue
		}
		if err := fn(e); err != nil {
			return empty, err
		}
	}
	if err := r.Err(); err != nil {
		return empty, err
	}
	return empty, nil
}

// compact removes nil values from s.
func compact[T comparable](s []T) []T {
	var zero T
	var out []T
	for _, v := range s {
		if v != zero {
			out = append(out, v)
		}
	}
	return out
}
