package main

import (
	"github.com/smartcalis/ml-service/pkg/cli"
)

func main() {
	cli.Execute()
}
