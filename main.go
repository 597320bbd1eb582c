package main

import "github.com/ccmarket/plugval/cmd"

func main() {
	cmd.Execute()
}
