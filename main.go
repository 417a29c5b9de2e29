package main

import "github.com/getpassgen/passgen/cmd"

func main() {
	cmd.Execute()
}
