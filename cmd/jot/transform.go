package main

import (
	"flag"

	"github.com/midbel/cli"
	"github.com/midbel/jot"
)

var mergeCmd = cli.Command{
	Name:    "merge",
	Summary: "merge two json objects, the second wins on collision",
	Handler: &MergeCmd{},
}

type MergeCmd struct {
	OutFile string
}

func (m *MergeCmd) Run(args []string) error {
	set := flag.NewFlagSet("merge", flag.ContinueOnError)
	set.StringVar(&m.OutFile, "f", "", "specify the path to the file where the document will be written")
	if err := set.Parse(args); err != nil {
		return err
	}
	fst, err := readDocument(set.Arg(0))
	if err != nil {
		return err
	}
	snd, err := readDocument(set.Arg(1))
	if err != nil {
		return err
	}
	res, err := jot.MergeObjects(fst, snd)
	if err != nil {
		return err
	}
	return writeResult(res, m.OutFile)
}

var filterCmd = cli.Command{
	Name:    "filter",
	Summary: "keep object entries whose key starts with the given prefix",
	Handler: &FilterCmd{},
}

type FilterCmd struct {
	OutFile string
	Prefix  string
}

func (f *FilterCmd) Run(args []string) error {
	set := flag.NewFlagSet("filter", flag.ContinueOnError)
	set.StringVar(&f.Prefix, "prefix", "", "keep keys starting with prefix")
	set.StringVar(&f.OutFile, "f", "", "specify the path to the file where the document will be written")
	if err := set.Parse(args); err != nil {
		return err
	}
	str, err := readDocument(set.Arg(0))
	if err != nil {
		return err
	}
	res, err := jot.FilterPrefix(str, f.Prefix)
	if err != nil {
		return err
	}
	return writeResult(res, f.OutFile)
}

var reverseCmd = cli.Command{
	Name:    "reverse",
	Alias:   []string{"rev"},
	Summary: "reverse the elements of a json array",
	Handler: &ReverseCmd{},
}

type ReverseCmd struct {
	OutFile string
}

func (r *ReverseCmd) Run(args []string) error {
	set := flag.NewFlagSet("reverse", flag.ContinueOnError)
	set.StringVar(&r.OutFile, "f", "", "specify the path to the file where the document will be written")
	if err := set.Parse(args); err != nil {
		return err
	}
	str, err := readDocument(set.Arg(0))
	if err != nil {
		return err
	}
	res, err := jot.ReverseArray(str)
	if err != nil {
		return err
	}
	return writeResult(res, r.OutFile)
}
