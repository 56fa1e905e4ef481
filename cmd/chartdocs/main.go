package main

import (
	"github.com/tigera/chartdocs/pkg/cli"
)

func main() {
	cli.Execute()
}
