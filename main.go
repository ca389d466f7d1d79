package main

import "github.com/ffi-playground/numffi/cmd"

func main() {
	cmd.Execute()
}
