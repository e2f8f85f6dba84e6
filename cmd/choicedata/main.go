package main

import "github.com/katalvlaran/choicedata/internal/cli"

func main() {
	cli.Execute()
}
