package app

import (
	"github.com/spf13/cobra"
)

type Factories struct {
	cmd      *cobra.Command
	mainopts *Options
}

func NewFactories(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factories",
		Short: "list the facet factories of the programming model",
		Args:  cobra.NoArgs,
	}
	c := &Factories{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run() }
	return cmd
}

func (c *Factories) Run() error {
	pm, err := c.mainopts.Model()
	if err != nil {
		return err
	}
	pm.Dump(c.cmd.OutOrStdout())
	return nil
}
