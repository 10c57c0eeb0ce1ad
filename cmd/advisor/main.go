package main

import (
	"github.com/se401/advisor/pkg/cli"
)

func main() {
	cli.Execute()
}
