package list

import (
	"fmt"
	"github.com/bokysan/basenc/internal/streams"
	"github.com/bokysan/basenc/internal/util/enc"
	"github.com/pkg/errors"
	"io"
	"text/tabwriter"
)

// Command lists the available encodings
type Command struct {
	Output io.Writer `no-flag:"true" yaml:"-"`
}

func (c *Command) Execute(args []string) error {
	w := c.Output
	if w == nil {
		w = streams.Stdout
	}
	return List(w, enc.DefaultRegistry())
}

// List prints a table of the encodings in the registry
//goland:noinspection GoUnhandledErrorResult
func List(w io.Writer, registry *enc.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tRADIX\tEFFICIENCY\tPADDING\tCASE SENSITIVE")
	for _, e := range registry.All() {
		padding := "-"
		if e.CanPad() {
			padding = fmt.Sprintf("%d", e.Padding())
			if e.PrefersPadding() {
				padding += " (default)"
			}
		}
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%s\t%v\n", e.Name(), e.Radix(), e.Efficiency(), padding, e.IsCaseSensitive())
	}
	return errors.WithStack(tw.Flush())
}
