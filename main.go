package main

import "github.com/lepinkainen/libra/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
