package main

import "github.com/alexiusacademia/gosbc/cmd"

func main() {
	cmd.Execute()
}
