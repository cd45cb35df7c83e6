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

package lexml

import (
	"bufio"
	"fmt"
	"html"
	"io"
)

const documentHeader = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="ja" lang="ja" xmlns:lexml="http://www.d-assist.com/lexml">
<head>
<meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
<title>%s</title>
<link rel="stylesheet" type="text/css" href="%s" />
</head>
<body>
`

const documentFooter = `</body>
</html>
`

// WriterOptions are options for a Writer.
type WriterOptions struct {
	// Title is the document title.
	Title string

	// Stylesheet is the URL of the document's stylesheet.
	Stylesheet string
}

// DefaultWriterOptions are the default options for a Writer.
var DefaultWriterOptions = &WriterOptions{}

// Writer writes entries to a LeXML document.
type Writer struct {
	w     *bufio.Writer
	count int
}

// NewWriter returns a new Writer and writes the document header to w. The
// document footer is written by Close.
func NewWriter(w io.Writer, opts *WriterOptions) (*Writer, error) {
	if opts == nil {
		opts = DefaultWriterOptions
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, documentHeader, html.EscapeString(opts.Title), html.EscapeString(opts.Stylesheet)); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return &Writer{w: bw}, nil
}

// WriteEntry writes an entry to the document.
func (w *Writer) WriteEntry(e *Entry) error {
	if _, err := fmt.Fprintf(w.w, "<dl>\n<dt id=\"%s\">%s</dt>\n", html.EscapeString(e.ID), html.EscapeString(e.Title)); err != nil {
		return fmt.Errorf("writing entry %q: %w", e.ID, err)
	}
	for _, k := range e.Keys {
		if _, err := fmt.Fprintf(w.w, "<lexml:key type=\"headword\">%s</lexml:key>\n", html.EscapeString(k)); err != nil {
			return fmt.Errorf("writing entry %q: %w", e.ID, err)
		}
	}
	if _, err := fmt.Fprintf(w.w, "<dd><p>%s</p></dd>\n</dl>\n", e.Body); err != nil {
		return fmt.Errorf("writing entry %q: %w", e.ID, err)
	}
	w.count++
	return nil
}

// Count returns the number of entries written.
func (w *Writer) Count() int {
	return w.count
}

// Close writes the document footer and flushes the document. It does not
// close the underlying writer.
func (w *Writer) Close() error {
	if _, err := w.w.WriteString(documentFooter); err != nil {
		return fmt.Errorf("writing footer: %w", err)
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flushing document: %w", err)
	}
	return nil
}
