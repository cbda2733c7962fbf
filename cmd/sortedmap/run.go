package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-sortedmap/logger"
	"github.com/amp-labs/amp-sortedmap/sortedmap"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// demoCities is the mapping printed by -demo. "america" and "America" fold to
// the same key.
var demoCities = []sortedmap.Pair[any]{ //nolint:gochecknoglobals
	{Key: "AWS", Value: 1},
	{Key: "Action", Value: 2},
	{Key: "america", Value: 3},
	{Key: "Auckland", Value: 4},
	{Key: "America", Value: 5},
}

type flags struct {
	file    string
	reverse bool
	slice   string
	demo    bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	fs := flag.NewFlagSet("sortedmap", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &flags{}
	fs.StringVar(&f.file, "f", "-", "mapping file (.yaml, .yml or .json); - reads stdin")
	fs.BoolVar(&f.reverse, "reverse", false, "print keys in descending order")
	fs.StringVar(&f.slice, "range", "", "only print sorted positions start:stop[:step]")
	fs.BoolVar(&f.demo, "demo", false, "print the built-in example instead of reading input")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, environ map[string]string) error {
	envs, err := parseEnvironment(environ)
	if err != nil {
		return err
	}

	out, err := logger.ParseOutput(envs.LogOutput)
	if err != nil {
		return err
	}

	logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem: "sortedmap",
		JSON:      envs.LogJSON,
		MinLevel:  envs.LogLevel,
		Output:    out,
	})

	f, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	ctx = logger.With(ctx, "file", f.file)
	log := logger.Get(ctx)

	if f.demo {
		return printDemo(stdout, envs.mapOptions(log))
	}

	m := sortedmap.New[any](nil, envs.mapOptions(log)...)

	if err := load(f.file, stdin, m); err != nil {
		return err
	}

	log.Debug("loaded mapping", "entries", m.Len(), "ignore_case", m.IgnoreCase(), "order", envs.Order.String())

	if f.slice != "" {
		s, err := sortedmap.ParseSlice(f.slice)
		if err != nil {
			return err
		}

		m = m.Range(s)
	}

	it := m.Iterate()
	if f.reverse {
		it = m.IterateReverse()
	}

	return render(stdout, m, it)
}

// load decodes the mapping into m. JSON files go through the JSON decoder;
// everything else (including stdin) is read as YAML, which also accepts JSON.
func load(file string, stdin io.Reader, m *sortedmap.SortedMap[any]) error {
	var (
		data []byte
		err  error
	)

	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}

	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	if strings.EqualFold(filepath.Ext(file), ".json") {
		err = json.Unmarshal(data, m)
	} else {
		err = yaml.Unmarshal(data, m)
	}

	if err != nil {
		return fmt.Errorf("decoding %s: %w", file, err)
	}

	return nil
}

func render(w io.Writer, m *sortedmap.SortedMap[any], it *sortedmap.Iterator[any]) error {
	rows := make([][]string, 0, it.Remaining())

	for key := range it.Seq() {
		value, err := m.Get(key)
		if err != nil {
			return err
		}

		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding value for key %q: %w", key, err)
		}

		rows = append(rows, []string{strconv.Itoa(len(rows)), key, string(encoded)})
	}

	table := tablewriter.NewTable(w)
	table.Header([]string{"#", "Key", "Value"})

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("adding rows to table: %w", err)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

// printDemo lists the demo keys twice, ignoring case and then respecting it.
// opts come from the environment; the case setting is overridden.
func printDemo(w io.Writer, opts []sortedmap.Option) error {
	ignoring := sortedmap.NewFromPairs(demoCities, append(opts, sortedmap.WithIgnoreCase(true))...)
	sensitive := sortedmap.NewFromPairs(demoCities, append(opts, sortedmap.WithIgnoreCase(false))...)

	_, err := fmt.Fprintf(w, "ignore case:    %s\ncase sensitive: %s\n",
		strings.Join(ignoring.Keys(), ", "), strings.Join(sensitive.Keys(), ", "))

	return err
}
