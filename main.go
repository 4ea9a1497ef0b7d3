package main

import "github.com/notargets/visualpts/cmd"

func main() {
	cmd.Execute()
}
