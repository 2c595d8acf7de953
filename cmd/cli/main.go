package main

import "dashfix/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
