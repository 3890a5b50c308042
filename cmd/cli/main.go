package main

import (
	"os"

	"convsvc/internal/cli"
)

func main() {
	cli.NewApp(os.Stdin, os.Stdout).Run()
}
