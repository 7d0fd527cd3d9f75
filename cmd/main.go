package main

import (
	"github.com/consensys/go-rtl/pkg/cmd"
)

func main() {
	cmd.Execute()
}
