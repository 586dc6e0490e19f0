package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/UNO-SOFT/xlbook"
	"github.com/UNO-SOFT/xlbook/ods"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		slog.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	fs := flag.NewFlagSet("xlmerge", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagOut := fs.String("o", "", "output file name (.xlsx or .ods)")
	flagSheet := fs.String("sheet", "", "read only the named sheet of each workbook")
	flagMerge := fs.Bool("merge", false, "merge all sheets into a single one")
	flagAppend := fs.Bool("a", false, "append sheets into the existing output")
	flagOverwrite := fs.Bool("f", false, "overwrite the output instead of writing a copy")
	flagIndex := fs.Bool("index", false, "write a row index column")
	flagIndexLabel := fs.String("index-label", "", "header of the row index column")
	flagEnc := fs.String("charset", xlbook.EncName, "csv charset name")

	app := ffcli.Command{Name: "xlmerge", FlagSet: fs,
		ShortUsage: "xlmerge -o out.xlsx in.xlsx [in2.xlsx in3.csv ...]",
		Exec: func(ctx context.Context, args []string) error {
			if *flagOut == "" || len(args) == 0 {
				return flag.ErrHelp
			}
			coll := xlbook.NewCollection()
			for _, fn := range args {
				if strings.EqualFold(filepath.Ext(fn), ".csv") {
					t, err := xlbook.ReadCSV(fn, *flagEnc)
					if err != nil {
						return err
					}
					name := strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn))
					coll.Set(name, t)
					logger.Debug("read csv", "file", fn, "sheet", name, "rows", t.NumRows())
					continue
				}
				c, err := xlbook.ReadSheet(fn, *flagSheet)
				if err != nil {
					return err
				}
				coll.Update(c)
				logger.Debug("read workbook", "file", fn, "sheets", c.Names())
			}
			if *flagMerge {
				merged := xlbook.MergeAll(coll)
				coll = xlbook.NewCollection()
				coll.Set("Merged", merged)
			}

			if strings.EqualFold(filepath.Ext(*flagOut), ".ods") {
				fh, err := os.Create(*flagOut)
				if err != nil {
					return err
				}
				defer fh.Close()
				if err = ods.Write(fh, coll); err != nil {
					return fmt.Errorf("write %q: %w", *flagOut, err)
				}
				return fh.Close()
			}

			opts := xlbook.WriteOptions{
				Overwrite: *flagOverwrite,
				Index:     *flagIndex, IndexLabel: *flagIndexLabel,
				Logger: logger,
			}
			var written string
			var err error
			if *flagAppend {
				written, err = xlbook.Append(*flagOut, coll, opts)
			} else {
				written, err = xlbook.Write(*flagOut, coll, opts)
			}
			if err != nil {
				return err
			}
			logger.Info("written", "file", written, "sheets", coll.Len())
			return nil
		},
	}

	if err := app.Parse(os.Args[1:]); err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}
