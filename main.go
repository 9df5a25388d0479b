package main

import "termfolio/internal/cli"

func main() {
	cli.Execute()
}
