package main

import (
	"log"
	"os"

	"github.com/zephyrtronium/calculator/cmd/calc/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
