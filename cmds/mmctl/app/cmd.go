package app

import (
	"fmt"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mandelsoft/facets/pkg/metamodel/progmodel"
	"github.com/mandelsoft/facets/pkg/utils"
)

type Options struct {
	fs       vfs.FileSystem
	config   string
	logLevel string
}

// Model provides the programming model configured by the
// config file option.
func (o *Options) Model() (*progmodel.ProgrammingModel, error) {
	pm := progmodel.Default()
	if o.config == "" {
		return pm, nil
	}
	cfg, err := progmodel.ReadConfig(o.fs, o.config)
	if err != nil {
		return nil, err
	}
	return pm.Configure(cfg)
}

func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.config, "config", "c", "", "programming model config file")
	flags.StringVarP(&o.logLevel, "log-level", "L", "", "log level for metamodel realms")
}

func (o *Options) setupLogging() error {
	if o.logLevel == "" {
		return nil
	}
	l, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", o.logLevel)
	}
	logging.DefaultContext().AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("metamodel")))
	return nil
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}

	maincmd := &cobra.Command{
		Use:   "mmctl <options> <cmd> <args>",
		Short: "inspect metamodel specifications",
		Long: `
This command builds the specifications of classes described
by YAML class documents using the configured programming model.
`,
		Run:              nil,
		TraverseChildren: true,
		SilenceUsage:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogging()
		},
	}

	opts.AddFlags(maincmd.PersistentFlags())

	maincmd.AddCommand(NewDump(opts))
	maincmd.AddCommand(NewFactories(opts))
	return maincmd
}
