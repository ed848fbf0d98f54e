package main

import "github.com/okanite/pomo/cmd"

func main() {
	cmd.Execute()
}
