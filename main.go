package main

import "github.com/iamsec/aws-cli/cmd"

func main() {
	cmd.Execute()
}
