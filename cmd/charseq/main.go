package main

import (
	"os"

	"github.com/msto63/charseq/cmd/charseq/cmd"
	mdwerror "github.com/msto63/charseq/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(mdwerror.GetCode(err).ExitCode())
	}
}
