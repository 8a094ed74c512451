package main

import "pagelens/cmd"

func main() {
	cmd.Execute()
}
