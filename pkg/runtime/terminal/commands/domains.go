package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/urban-tools/congestion-atlas/pkg/services/synth"
)

type DomainsCmd struct {
	registry synth.Registry
}

func NewDomainsCmd(registry synth.Registry) *cobra.Command {
	dc := &DomainsCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "List the domains the generator registry supports",
		RunE:  dc.run,
	}

	return cmd
}

func (dc *DomainsCmd) run(cmd *cobra.Command, args []string) error {
	domains := dc.registry.Domains()
	if len(domains) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No domains registered")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Supported domains:\n%s\n", strings.Join(domains, "\n"))

	return nil
}
