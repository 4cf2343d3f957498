package main

import "github.com/sauceclient/sauceclient/internal/cli"

func main() {
	cli.Execute()
}
