package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sensorkit/unit-test-harness/harness"
)

type commandParams struct {
	devices     string
	productLine string
	filters     harness.RegexFilters
	debug       bool
	debugAll    bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.devices, "devices", "",
		"comma-separated device list (name:productLine:serial), overriding the environment")
	fs.StringVar(&c.productLine, "product-line", "", "restrict the run to devices of this product line")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "show debug output for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show debug output for all tests as it happens")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}
