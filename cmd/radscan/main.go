package main

import "radscan/internal/cli"

func main() {
	cli.Execute()
}
