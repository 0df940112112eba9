package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/facets/pkg/ctxutil"
	"github.com/mandelsoft/facets/pkg/metamodel/spec"
	"github.com/mandelsoft/facets/pkg/metamodel/warmup"
	"github.com/mandelsoft/facets/pkg/reflection"
	"github.com/mandelsoft/facets/pkg/utils"
)

type Dump struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
	classes  []string
	workers  int
	timeout  time.Duration
}

func NewDump(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump {<class document>} <options>",
		Short: "build and show the specifications of the classes of class documents",
		Args:  cobra.MinimumNArgs(1),
	}
	c := &Dump{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	c.AddFlags(cmd.Flags())
	return cmd
}

func (c *Dump) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.output, "output", "o", "", "output format (yaml, json or text)")
	flags.StringSliceVarP(&c.classes, "class", "C", nil, "classes to show (default all)")
	flags.IntVarP(&c.workers, "workers", "w", 2, "number of build workers")
	flags.DurationVarP(&c.timeout, "timeout", "t", 0, "timeout for building the specifications")
}

func (c *Dump) Run(args []string) error {
	pm, err := c.mainopts.Model()
	if err != nil {
		return err
	}

	doc := &reflection.Document{}
	for _, path := range args {
		data, err := vfs.ReadFile(c.mainopts.fs, path)
		if err != nil {
			return fmt.Errorf("cannot read class document %q: %w", path, err)
		}
		d, err := reflection.ParseDocument(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		doc.Classes = append(doc.Classes, d.Classes...)
	}

	registry := reflection.NewRegistry()
	classes, err := doc.Define(registry)
	if err != nil {
		return err
	}
	if len(c.classes) > 0 {
		var selected []reflection.Class
		for _, n := range c.classes {
			cls := registry.GetClass(n)
			if cls == nil {
				return fmt.Errorf("unknown class %q", n)
			}
			selected = append(selected, cls)
		}
		classes = selected
	}

	loader := spec.NewLoader(pm)
	defer loader.Shutdown()

	ctx := ctxutil.TimeoutContext(context.Background(), c.timeout)
	defer ctxutil.Cancel(ctx)
	result := warmup.Preload(ctx, loader, classes, c.workers)

	var list []spec.Specification
	for _, cls := range classes {
		if s := result.Specifications[cls.Name()]; s != nil {
			list = append(list, s)
		}
	}

	out := c.cmd.OutOrStdout()
	switch strings.ToLower(strings.TrimSpace(c.output)) {
	case "", "text":
		for _, s := range list {
			s.Dump(out)
		}
		for _, id := range result.Failed() {
			fmt.Fprintf(out, "class %s (%s): %s\n", id, spec.Failed, result.Errors[id])
		}
	case "json":
		data, err := json.Marshal(viewsFor(list, result))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", string(data))
	case "yaml":
		data, err := yaml.Marshal(viewsFor(list, result))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s", string(data))
	default:
		return fmt.Errorf("invalid output format %q", c.output)
	}
	return result.Err()
}

func viewsFor(list []spec.Specification, result *warmup.Result) *List {
	l := &List{
		Items: utils.TransformSlice(list, ViewFor),
	}
	for _, id := range result.Failed() {
		l.Failed = append(l.Failed, Failure{Class: id, Error: result.Errors[id].Error()})
	}
	return l
}
