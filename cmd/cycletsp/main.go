package main

import "github.com/katalvlaran/cycletsp/internal/cli"

var version = "v0.0.0-dev"

func main() {
	cli.Execute(version)
}
