package main

import "github.com/ivan-guerra/rot13/internal/cli"

func main() {
	cli.Execute()
}
