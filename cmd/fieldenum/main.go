package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/signadot/fieldenum/codegen"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Command, "fieldenum").
		WithSynopsis("fieldenum [opts] [packages]").
		WithDescription("Generate field name and field type enumerations for structs marked with //fieldenum:derive(FieldName, FieldType).").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	OutputFile string `cli:"name=o desc='output file for generated code, relative to each package directory (default: <package>_fieldenum.go)'"`
	Dir        string `cli:"name=dir desc='directory to scan for Go files (default: current directory)'"`
	Recursive  bool   `cli:"name=recursive desc='scan subdirectories recursively'"`
	Types      string `cli:"name=type desc='comma separated names of the structs to generate (default: all)'"`
	Where      string `cli:"name=where desc='expression selecting the structs to generate, e.g. exported && !generic'"`
	ConfigFile string `cli:"name=config desc='YAML configuration file'"`
	Check      bool   `cli:"name=check desc='print differences with the generated files instead of writing them, fail if any'"`
	Watch      bool   `cli:"name=watch desc='regenerate whenever Go files change'"`
	Gops       bool   `cli:"name=gops desc='run a gops diagnostics agent while watching'"`
	Verbose    bool   `cli:"name=v desc='log debug messages'"`

	Command *cli.Command
}

// errOutOfDate is returned by -check when a generated file differs.
var errOutOfDate = errors.New("generated files are out of date")

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if cfg.Check && cfg.Watch {
		return fmt.Errorf("%w: cannot specify both -check and -watch", cli.ErrUsage)
	}
	if cfg.Gops && !cfg.Watch {
		return fmt.Errorf("%w: -gops requires -watch", cli.ErrUsage)
	}
	if cfg.Recursive && len(args) != 0 {
		return fmt.Errorf("%w: -recursive only applies to directory scanning, use a ./... pattern instead", cli.ErrUsage)
	}

	cgCfg, err := cfg.codegenConfig()
	if err != nil {
		return err
	}
	g := newGenerator(cfg, cgCfg, args, cc.Out, os.Stderr)

	if cfg.Watch {
		if cfg.Gops {
			if err := agent.Listen(agent.Options{}); err != nil {
				theLog.Warn("gops agent failed", "error", err)
			}
			defer agent.Close()
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return g.watch(ctx)
	}
	return g.pass()
}

// codegenConfig merges the flags over the optional configuration file.
func (cfg *Config) codegenConfig() (*codegen.CodegenConfig, error) {
	cgCfg := codegen.NewCodegenConfig()
	cgCfg.OutputFile = cfg.OutputFile
	cgCfg.Where = cfg.Where
	if cfg.Types != "" {
		for _, t := range strings.Split(cfg.Types, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cgCfg.Types = append(cgCfg.Types, t)
			}
		}
	}
	if cfg.ConfigFile == "" {
		return cgCfg, cgCfg.Names.Validate()
	}
	fc, err := codegen.LoadConfig(cfg.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := fc.Apply(cgCfg); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", cfg.ConfigFile, err)
	}
	theLog.Debug("loaded config", "path", cfg.ConfigFile)
	return cgCfg, nil
}
