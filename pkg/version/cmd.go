package version

import (
	"fmt"

	Z "github.com/rwxrob/bonzai/z"
	"github.com/rwxrob/help"
)

// Cmd is the version command
var Cmd = &Z.Cmd{
	Name:     "version",
	Aliases:  []string{"v"},
	Summary:  "print the version of datepick",
	Commands: []*Z.Cmd{help.Cmd},
	Call: func(cmd *Z.Cmd, args ...string) error {
		fmt.Printf("datepick version %s\n", Version)
		return nil
	},
}
