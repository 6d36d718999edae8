package main

import "github.com/axelroques/ditto/cmd"

func main() {
	cmd.Execute()
}
