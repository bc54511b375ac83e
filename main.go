// Package main is the entry point for the navmend CLI.
package main

import "navmend.dev/pkg/navmend/cmd"

func main() {
	cmd.Execute()
}
