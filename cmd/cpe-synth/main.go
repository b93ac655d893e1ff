package main

import "cpe-synth/internal/cli"

func main() {
	cli.Execute()
}
