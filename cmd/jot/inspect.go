package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"
	"github.com/midbel/jot"
)

var keysCmd = cli.Command{
	Name:    "keys",
	Summary: "list the keys of a json object",
	Handler: &KeysCmd{},
}

type KeysCmd struct{}

func (k *KeysCmd) Run(args []string) error {
	set := flag.NewFlagSet("keys", flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		return err
	}
	str, err := readDocument(set.Arg(0))
	if err != nil {
		return err
	}
	keys, err := jot.Keys(str)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintln(os.Stdout, k)
	}
	return nil
}

var countCmd = cli.Command{
	Name:    "count",
	Summary: "count the entries of a json object",
	Handler: &CountCmd{},
}

type CountCmd struct{}

func (c *CountCmd) Run(args []string) error {
	set := flag.NewFlagSet("count", flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		return err
	}
	str, err := readDocument(set.Arg(0))
	if err != nil {
		return err
	}
	count, err := jot.CountKeys(str)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, count)
	return nil
}

var checkCmd = cli.Command{
	Name:    "check",
	Alias:   []string{"valid"},
	Summary: "check that a document is a well formed object or array",
	Handler: &CheckCmd{},
}

type CheckCmd struct {
	Quiet bool
}

func (c *CheckCmd) Run(args []string) error {
	set := flag.NewFlagSet("check", flag.ContinueOnError)
	set.BoolVar(&c.Quiet, "quiet", false, "suppress output - default is to print the result")
	if err := set.Parse(args); err != nil {
		return err
	}
	str, err := readDocument(set.Arg(0))
	if err != nil {
		return err
	}
	ok := jot.IsValidObject(str) || jot.IsValidArray(str)
	if !c.Quiet {
		fmt.Fprintln(os.Stdout, ok)
	}
	if !ok {
		return errFail
	}
	return nil
}
