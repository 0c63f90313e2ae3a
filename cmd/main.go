package main

import "wedshare/cmd/commands"

func main() {
	commands.Execute()
}
