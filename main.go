package main

import (
	"os"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/cmd"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
