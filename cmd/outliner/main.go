package main

import "github.com/chocothunder5013/coredump-round1a/cmd/outliner/cmd"

func main() {
	cmd.Execute()
}
