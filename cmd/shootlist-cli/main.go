package main

import "shootlist/cmd/shootlist-cli/cmd"

func main() {
	cmd.Execute()
}
