// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdfio reads and writes the PDF text file format.
//
// A file holds optional header lines of the form "# key: value" for
// the keys name, variable_type and unit (case-insensitive), followed
// by one "x,px" data row per line in increasing x order. Data rows
// may equivalently be separated by spaces or tabs.
package pdfio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/riserlab/riser/pdf"
)

// Read parses a PDF file. The density is normalized to unit area on
// load, since files commonly store unscaled relative likelihoods.
func Read(path string) (*pdf.PDF, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading PDF file")
	}
	defer f.Close()

	var opts pdf.Options
	opts.Normalize = true
	var xs, pxs []float64

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			key, value, ok := parseHeader(line)
			if !ok {
				continue
			}
			switch key {
			case "name":
				opts.Name = value
			case "variable_type":
				opts.VariableType = value
			case "unit":
				opts.Unit = value
			}
			continue
		}

		x, px, err := parseRow(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, lineNo)
		}
		xs = append(xs, x)
		pxs = append(pxs, px)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	p, err := pdf.New(xs, pxs, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return p, nil
}

// parseHeader splits a "# key: value" line. Keys are matched
// case-insensitively.
func parseHeader(line string) (key, value string, ok bool) {
	body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	k, v, found := strings.Cut(body, ":")
	if !found {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(k)), strings.TrimSpace(v), true
}

// parseRow parses one data row, accepting comma, space, or tab
// separation.
func parseRow(line string) (x, px float64, err error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	// FieldsFunc drops empty fields, normalizing "1, 2", "1  2"
	// and "1\t2" alike.
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want one x,px pair, have %d fields", len(fields))
	}
	if x, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, fmt.Errorf("bad x value %q", fields[0])
	}
	if px, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, fmt.Errorf("bad px value %q", fields[1])
	}
	return x, px, nil
}

// Write saves p to path in the text format, with one header line per
// set metadata field.
func Write(path string, p *pdf.PDF) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "writing PDF file")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if p.Name() != "" {
		fmt.Fprintf(w, "# name: %s\n", p.Name())
	}
	if p.VariableType() != "" {
		fmt.Fprintf(w, "# variable_type: %s\n", p.VariableType())
	}
	if p.Unit() != "" {
		fmt.Fprintf(w, "# unit: %s\n", p.Unit())
	}
	for i := 0; i < p.Len(); i++ {
		x, px := p.At(i)
		fmt.Fprintf(w, "%s,%s\n",
			strconv.FormatFloat(x, 'g', -1, 64),
			strconv.FormatFloat(px, 'g', -1, 64))
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
