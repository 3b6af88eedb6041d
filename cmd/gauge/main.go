package main

import "github.com/vasalvit/gauge/cmd/gauge/commands"

func main() {
	commands.Execute()
}
