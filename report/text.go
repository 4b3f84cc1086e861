// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package report

import (
	"fmt"
	"io"
	"text/template"

	"github.com/devblok/koruinfo/device"
	"github.com/gobuffalo/packr"
)

// Templates holds the text layouts
var Templates = packr.NewBox("./templates")

const devicesTemplate = "devices.tmpl"

var templateFuncs = template.FuncMap{
	"hex": func(v uint32) string {
		return fmt.Sprintf("%x", v)
	},
	"float": func(v float32) string {
		return fmt.Sprintf("%f", v)
	},
}

// Text renders the inventory in the human readable layout
type Text struct {
	tmpl *template.Template
}

// NewText parses the boxed device template
func NewText() (*Text, error) {
	src, err := Templates.FindString(devicesTemplate)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(devicesTemplate).Funcs(templateFuncs).Parse(src)
	if err != nil {
		return nil, err
	}
	return &Text{tmpl: tmpl}, nil
}

// Format implements Formatter
func (t *Text) Format(w io.Writer, reports []device.Report) error {
	return t.tmpl.Execute(w, reports)
}
