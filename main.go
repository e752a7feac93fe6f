package main

import "github.com/theirongolddev/costbook/cmd"

func main() {
	cmd.Execute()
}
