package bot

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	ds "github.com/oaiiae/contacts-bot/datastores"
)

// VersionCommand prints build information.
func VersionCommand(title, version, revision string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), title, version, revision, runtime.Version())
		},
	}
}

// CheckSeedCommand validates a seed file without starting the bot.
func CheckSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-seed FILE",
		Short: "Validate a YAML seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			records, err := ds.DecodeSeed(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d contacts\n", len(records))
			return nil
		},
	}
}
