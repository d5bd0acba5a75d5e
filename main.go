// Package main is the entry point of the linecov CLI.
package main

import "github.com/mouse-blink/linecov/cmd"

func main() {
	cmd.Execute()
}
