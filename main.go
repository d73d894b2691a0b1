package main

import "cssmith/cmd"

func main() {
	cmd.Execute()
}
