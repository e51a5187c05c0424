package main

import "github.com/commait/commait/cmd"

func main() {
	cmd.Execute()
}
