// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package report renders device inventories for people and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/devblok/koruinfo/device"
	"gopkg.in/yaml.v3"
)

// Formatter writes a device inventory to w
type Formatter interface {
	Format(w io.Writer, reports []device.Report) error
}

// Supported formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is the top level object of machine readable output
type Document struct {
	Devices []device.Report `json:"devices" yaml:"devices"`
}

// New returns the Formatter for the named format
func New(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return NewText()
	case FormatJSON:
		return JSON{Indent: "  "}, nil
	case FormatYAML, "yml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// JSON writes the inventory as a JSON document
type JSON struct {
	Indent string
}

// Format implements Formatter
func (j JSON) Format(w io.Writer, reports []device.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	return enc.Encode(Document{Devices: reports})
}

// YAML writes the inventory as a YAML document
type YAML struct{}

// Format implements Formatter
func (YAML) Format(w io.Writer, reports []device.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Devices: reports}); err != nil {
		return err
	}
	return enc.Close()
}
