package main

import "fabric-scaffold/internal/cli"

func main() {
	cli.Execute()
}
