package main

import (
	"os"

	apppkg "github.com/kk-code-lab/proxsort/internal/app"
)

func main() {
	os.Exit(apppkg.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
