package main

import "github.com/kamal-hamza/rsa-cli/cmd"

func main() {
	cmd.Execute()
}
