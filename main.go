package main

import "github.com/mfields/resumegen/cmd"

func main() {
	cmd.Execute()
}
