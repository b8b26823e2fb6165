// Binary sqldt-bench constructs datetime values concurrently.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-faster/sqltypes"
	"github.com/go-faster/sqltypes/internal/cmd/app"
)

// maxDays is count of days from 1900-01-01 to 9999-12-31.
const maxDays = 2_958_463

// minDays is count of days from 1900-01-01 back to 1753-01-01.
const minDays = -53_690

// maxTimeTicks is 23:59:59, the time of day of MaxValue.
const maxTimeTicks = sqltypes.SQLTicksPerDay - sqltypes.SQLTicksPerSecond

type stats struct {
	Rows  atomic.Uint64
	Nulls atomic.Uint64
}

// roundTrip constructs value for row i and checks that it decomposes back.
func roundTrip(i int, s *stats) error {
	var (
		days  = int32(minDays + i%(maxDays-minDays+1))
		ticks = int32((i * 7919) % (maxTimeTicks + 1))
	)
	v, err := sqltypes.FromDaysAndSQLTicks(days, ticks)
	if err != nil {
		return errors.Wrapf(err, "row %d", i)
	}
	if i%10 == 0 {
		v = sqltypes.Null
	}
	if v.IsNull() {
		s.Nulls.Inc()
		s.Rows.Inc()
		return nil
	}
	gotDays, gotTicks, err := v.DaysAndSQLTicks()
	if err != nil {
		return errors.Wrapf(err, "row %d", i)
	}
	if gotDays != days || gotTicks != ticks {
		return errors.Errorf("row %d: %s decoded as (%d, %d), expected (%d, %d)",
			i, v, gotDays, gotTicks, days, ticks,
		)
	}
	s.Rows.Inc()
	return nil
}

func bench(ctx context.Context, lg *zap.Logger, jobs, rows int) (*stats, error) {
	s := new(stats)
	g, ctx := errgroup.WithContext(ctx)
	for j := 0; j < jobs; j++ {
		j := j
		g.Go(func() error {
			for i := j; i < rows; i += jobs {
				if i%100_000 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if err := roundTrip(i, s); err != nil {
					return err
				}
			}
			if ce := lg.Check(zap.DebugLevel, "Job done"); ce != nil {
				ce.Write(zap.Int("job", j))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return s, errors.Wrap(err, "wait")
	}
	return s, nil
}

func run(ctx context.Context, lg *zap.Logger) (re error) {
	var arg struct {
		Jobs    int
		Profile string
		Rows    int
	}
	flag.IntVar(&arg.Jobs, "j", 4, "jobs")
	flag.IntVar(&arg.Rows, "n", 10_000_000, "rows")
	flag.StringVar(&arg.Profile, "profile", "", "cpu profile")
	flag.Parse()

	if arg.Profile != "" {
		f, err := os.Create(arg.Profile)
		if err != nil {
			return errors.Wrap(err, "create profile")
		}
		defer func() {
			if err := f.Close(); err != nil {
				re = multierr.Append(re, err)
			}
			lg.Info("Profile written", zap.String("path", arg.Profile))
		}()
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "start profile")
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	s, err := bench(ctx, lg, arg.Jobs, arg.Rows)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	fmt.Println(duration.Round(time.Millisecond),
		humanize.Comma(int64(s.Rows.Load())), "rows",
		humanize.Comma(int64(s.Nulls.Load())), "nulls",
		humanize.SI(float64(s.Rows.Load())/duration.Seconds(), "rows/s"),
		arg.Jobs, "jobs",
	)
	return nil
}

func main() {
	app.Run(run)
}
