package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/goice/binaries/icecl/config"
	"github.com/twitter/goice/cli"
	iceerrors "github.com/twitter/goice/common/errors"
	"github.com/twitter/goice/common/log/hooks"
	"github.com/twitter/goice/ice"
)

// icecl builds an ice Registry from a shapes configuration and queries it.
func main() {
	log.AddHook(hooks.NewContextHook())

	err := cli.NewCLIClient(config.Asset, os.Stdout).Exec()
	if err != nil {
		exitErr := withExitCode(err)
		log.Errorf("icecl: %v", exitErr)
		os.Exit(int(exitErr.GetExitCode()))
	}
}

func withExitCode(err error) *iceerrors.ExitCodeError {
	var usage *cli.UsageError
	var conf *cli.ConfigError
	switch {
	case errors.As(err, &usage):
		return iceerrors.NewError(err, iceerrors.UsageExitCode)
	case errors.As(err, &conf):
		return iceerrors.NewError(err, iceerrors.ConfigFailureExitCode)
	case errors.Is(err, ice.ErrInvalidArgument):
		return iceerrors.NewError(err, iceerrors.RegistryInitFailureExitCode)
	case errors.Is(err, ice.ErrConstructionFailed), errors.Is(err, ice.ErrCyclicResolution):
		return iceerrors.NewError(err, iceerrors.ConstructionFailureExitCode)
	case errors.Is(err, ice.ErrUnresolvable):
		return iceerrors.NewError(err, iceerrors.UnresolvableExitCode)
	case errors.Is(err, ice.ErrConstructionUnavailable):
		return iceerrors.NewError(err, iceerrors.ConstructionUnavailableExitCode)
	}
	return iceerrors.NewError(err, iceerrors.UsageExitCode)
}
