package main

import (
	"github.com/stackup-cli/stackup/cli"
	"github.com/stackup-cli/stackup/logger"
)

func main() {
	logger.InitLogger()
	cli.Execute()
}
