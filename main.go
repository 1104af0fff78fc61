package main

import "github.com/pasraylib/projgen/cmd"

func main() {
	cmd.Execute()
}
