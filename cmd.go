// datepick command line tool
package datepick

import (
	Z "github.com/rwxrob/bonzai/z"
	"github.com/rwxrob/help"

	"github.com/arjungandhi/datepick/cmd/datepick/cli"
	"github.com/arjungandhi/datepick/pkg/config"
	"github.com/arjungandhi/datepick/pkg/update"
	"github.com/arjungandhi/datepick/pkg/version"
)

// Cmd is the root of the datepick command tree
var Cmd = &Z.Cmd{
	Name:    "datepick",
	Summary: "datepick is a terminal calendar for picking dates",
	Commands: []*Z.Cmd{
		help.Cmd,
		cli.Pick,
		cli.History,
		cli.Locales,
		config.Cmd,
		version.Cmd,
		update.Cmd,
	},
}
