package commander

import (
	"fmt"
)

// Set at build time with -ldflags "-X github.com/nPaBwaYT/spn128/commander.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Time    = "unknown"
)

type VersionCmd struct{}

func (v *VersionCmd) Run(env *Env) error {
	_, err := fmt.Fprintf(env.Out, "Version: %s (%s) built at %s\n", Version, Commit, Time)
	return err
}
