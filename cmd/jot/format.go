package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"
	"github.com/midbel/jot"
)

var formatCmd = cli.Command{
	Name:    "format",
	Alias:   []string{"fmt"},
	Summary: "rewrite a json document",
	Handler: &FormatCmd{},
}

type FormatCmd struct {
	OutFile  string
	Compact  bool
	Indent   string
	CaseType string
}

func (f *FormatCmd) Run(args []string) error {
	set := flag.NewFlagSet("format", flag.ContinueOnError)

	set.BoolVar(&f.Compact, "compact", false, "write compact output")
	set.StringVar(&f.Indent, "indent", "  ", "indent nested values with the given string")
	set.StringVar(&f.CaseType, "case-type", "", "rewrite object keys to given case family")
	set.StringVar(&f.OutFile, "f", "", "specify the path to the file where the document will be written")

	if err := set.Parse(args); err != nil {
		return err
	}

	doc, err := parseDocument(set.Arg(0))
	if err != nil {
		return err
	}
	ct, err := caseTypeFrom(f.CaseType)
	if err != nil {
		return err
	}
	if ct != jot.DefaultCase {
		doc = jot.RecaseKeys(doc, ct)
	}
	return f.writeDocument(doc)
}

func (f *FormatCmd) writeDocument(doc jot.Value) error {
	var w = os.Stdout
	if f.OutFile != "" {
		fd, err := os.Create(f.OutFile)
		if err != nil {
			return err
		}
		defer fd.Close()
		w = fd
	}
	ws := jot.NewWriter(w)
	ws.Compact = f.Compact
	ws.Indent = f.Indent
	if err := ws.Write(doc); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

const (
	snakeCaseType = "snake"
	kebabCaseType = "kebab"
	camelCaseType = "camel"
)

func caseTypeFrom(str string) (jot.CaseType, error) {
	switch str {
	case "":
		return jot.DefaultCase, nil
	case snakeCaseType:
		return jot.SnakeCase, nil
	case kebabCaseType:
		return jot.KebabCase, nil
	case camelCaseType:
		return jot.CamelCase, nil
	default:
		return jot.DefaultCase, fmt.Errorf("%s: unsupported case family", str)
	}
}
