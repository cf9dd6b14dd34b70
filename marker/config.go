// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marker

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/riserlab/riser/diag"
	"github.com/riserlab/riser/pdf"
	"github.com/riserlab/riser/pdfio"
)

// markerSpec is one [marker] table of the configuration file. The
// age and displacement files are required; the remaining keys supply
// metadata for PDF files that carry none of their own.
type markerSpec struct {
	AgeFile                  string `toml:"age file"`
	DisplacementFile         string `toml:"displacement file"`
	AgeName                  string `toml:"age name"`
	AgeVariableType          string `toml:"age variable type"`
	AgeUnit                  string `toml:"age unit"`
	DisplacementName         string `toml:"displacement name"`
	DisplacementVariableType string `toml:"displacement variable type"`
	DisplacementUnit         string `toml:"displacement unit"`
}

// ReadConfig loads a marker chain from a TOML file with one table per
// marker. Table order in the file defines chain order. Metadata found
// inside a referenced PDF file takes precedence over the config file
// on conflict, with a warning.
func ReadConfig(path string) (List, diag.Diagnostics, error) {
	var d diag.Diagnostics

	specs := make(map[string]markerSpec)
	md, err := toml.DecodeFile(path, &specs)
	if err != nil {
		return nil, d, errors.Wrap(err, "reading marker config")
	}

	var list List
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue // sub-keys of a marker table
		}
		name := key[0]
		spec, ok := specs[name]
		if !ok {
			continue
		}
		if spec.AgeFile == "" {
			return nil, d, errors.Errorf("marker %s: age file must be specified", name)
		}
		if spec.DisplacementFile == "" {
			return nil, d, errors.Errorf("marker %s: displacement file must be specified", name)
		}

		age, err := pdfio.Read(spec.AgeFile)
		if err != nil {
			return nil, d, errors.Wrapf(err, "marker %s", name)
		}
		age = applyMetadata(age, name+" age", spec.AgeName, spec.AgeVariableType, spec.AgeUnit, &d)

		displacement, err := pdfio.Read(spec.DisplacementFile)
		if err != nil {
			return nil, d, errors.Wrapf(err, "marker %s", name)
		}
		displacement = applyMetadata(displacement, name+" displacement",
			spec.DisplacementName, spec.DisplacementVariableType, spec.DisplacementUnit, &d)

		m, warns, err := New(name, age, displacement)
		if err != nil {
			return nil, d, err
		}
		d.Extend(warns)
		list = append(list, m)
	}

	d.Extend(CheckOrder(list))
	return list, d, nil
}

// applyMetadata fills blank PDF metadata from the config file. Values
// already present in the PDF file win; a conflicting config value is
// reported and ignored.
func applyMetadata(p *pdf.PDF, what, name, variableType, unitTag string, d *diag.Diagnostics) *pdf.PDF {
	warn := func(field, file, spec string) {
		d.Warnf(diag.MetadataConflict, "%s: %s %q in file differs from %q in config; using the file's", what, field, file, spec)
	}

	if name != "" {
		if p.Name() == "" {
			p = p.WithName(name)
		} else if p.Name() != name {
			warn("name", p.Name(), name)
		}
	}
	if variableType != "" {
		if p.VariableType() == "" {
			p = p.WithVariableType(variableType)
		} else if p.VariableType() != variableType {
			warn("variable type", p.VariableType(), variableType)
		}
	}
	if unitTag != "" {
		if p.Unit() == "" {
			p = p.WithUnit(unitTag)
		} else if p.Unit() != unitTag {
			warn("unit", p.Unit(), unitTag)
		}
	}
	return p
}
