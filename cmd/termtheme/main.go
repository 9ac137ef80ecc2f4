package main

import "github.com/ajramos/termtheme/internal/cli"

func main() {
	cli.Execute()
}
