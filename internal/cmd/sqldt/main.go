// Binary sqldt prints decomposition of datetime values.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/go-faster/sqltypes"
	"github.com/go-faster/sqltypes/internal/cmd/app"
)

// parseArgs parses values, "NULL" (any case) is Null.
func parseArgs(lg *zap.Logger, args []string) ([]sqltypes.DateTime, error) {
	values := make([]sqltypes.DateTime, 0, len(args))
	for _, arg := range args {
		if strings.EqualFold(arg, "null") {
			values = append(values, sqltypes.Null)
			continue
		}
		v, err := sqltypes.Parse(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "arg %d", len(values))
		}
		if ce := lg.Check(zap.DebugLevel, "Parsed"); ce != nil {
			ce.Write(
				zap.String("arg", arg),
				zap.Stringer("value", v),
				zap.Uint64("hash", v.Hash()),
			)
		}
		values = append(values, v)
	}
	return values, nil
}

func writeTable(w io.Writer, values []sqltypes.DateTime) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tDAY TICKS\tTIME TICKS\tDAYS\tSQL TICKS\tLT NEXT")
	for i, v := range values {
		if v.IsNull() {
			fmt.Fprintf(tw, "NULL\t\t\t\t\t%s\n", ltNext(values, i))
			continue
		}
		dayTicks, err := v.DayTicks()
		if err != nil {
			return errors.Wrap(err, "day ticks")
		}
		timeTicks, err := v.TimeTicks()
		if err != nil {
			return errors.Wrap(err, "time ticks")
		}
		days, sqlTicks, err := v.DaysAndSQLTicks()
		if err != nil {
			return errors.Wrap(err, "sql ticks")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", v,
			humanize.Comma(int64(dayTicks)),
			humanize.Comma(int64(timeTicks)),
			humanize.Comma(int64(days)),
			humanize.Comma(int64(sqlTicks)),
			ltNext(values, i),
		)
	}
	return tw.Flush()
}

// ltNext returns values[i] < values[i+1] or empty string for last value.
func ltNext(values []sqltypes.DateTime, i int) string {
	if i+1 >= len(values) {
		return ""
	}
	return sqltypes.Lt(values[i], values[i+1]).String()
}

func inspect(w io.Writer, lg *zap.Logger, args []string, sorted bool) error {
	values, err := parseArgs(lg, args)
	if err != nil {
		return errors.Wrap(err, "parse")
	}
	if sorted {
		slices.SortStableFunc(values, sqltypes.Compare)
	}
	lg.Info("Inspecting", zap.Int("values", len(values)), zap.Bool("sorted", sorted))
	return writeTable(w, values)
}

func main() {
	app.Run(func(ctx context.Context, lg *zap.Logger) error {
		var arg struct {
			Sort bool
		}
		flag.BoolVar(&arg.Sort, "sort", false, "sort values, nulls last")
		flag.Parse()
		if flag.NArg() == 0 {
			return errors.New("no values")
		}
		return inspect(os.Stdout, lg, flag.Args(), arg.Sort)
	})
}
