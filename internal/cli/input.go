package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/htmltext"
	"github.com/tsawler/htmltext/internal/logger"
)

// stdinName is the argument that selects standard input.
const stdinName = "-"

// input is one document named on the command line.
type input struct {
	name string
	data []byte // set for stdin, nil for files
}

// extractor returns a fresh extractor for the input.
func (in input) extractor() *htmltext.Extractor {
	if in.data != nil {
		return htmltext.FromBytes(in.data)
	}
	return htmltext.Open(in.name)
}

// readInputs maps arguments to inputs. Standard input is read once, up
// front, so that workers never share the reader.
func readInputs(cmd *cobra.Command, args []string) ([]input, error) {
	inputs := make([]input, 0, len(args))
	var stdin []byte
	for _, arg := range args {
		if arg != stdinName {
			inputs = append(inputs, input{name: arg})
			continue
		}
		if stdin == nil {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			stdin = append([]byte{}, b...)
		}
		inputs = append(inputs, input{name: stdinName, data: stdin})
	}
	return inputs, nil
}

// renderFunc formats the output for one input.
type renderFunc func(in input) (string, []htmltext.Warning, error)

// process renders every input with up to cfg.Jobs workers and writes the
// results to the command output in argument order. When there is more than
// one input each result is preceded by a "==> name <==" header.
func process(cmd *cobra.Command, args []string, render renderFunc) error {
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	results := make([]string, len(inputs))
	g, ctx := errgroup.WithContext(contextOrBackground(cmd.Context()))
	g.SetLimit(cfg.Jobs)

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log := logger.For(in.name)
			start := time.Now()
			out, warnings, err := render(in)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			for _, w := range warnings {
				log.Warn("%s", w)
			}
			log.Debug("processed in %s", time.Since(start))
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, in := range inputs {
		if len(inputs) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", in.name)
		}
		text := results[i]
		if text != "" && !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		fmt.Fprint(out, text)
	}
	return nil
}

// contextOrBackground guards against commands run without a context.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
