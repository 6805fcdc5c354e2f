package main

import (
	"crafto-editor/cli"
)

func main() {
	cli.Start()
}
