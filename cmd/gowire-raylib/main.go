package main

import "github.com/philipparndt/gowire/cmd"

func main() {
	cmd.Execute()
}
