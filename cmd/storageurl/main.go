package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ruteri/storage-url/cmd/flags"
	"github.com/ruteri/storage-url/storage"
	"github.com/urfave/cli/v2"
)

var aliasFlag = &cli.StringSliceFlag{
	Name:  "alias",
	Usage: "storage alias and URL as name=url, may be repeated",
}

var prettyFlag = &cli.BoolFlag{
	Name:  "pretty",
	Value: false,
	Usage: "indent JSON output",
}

var envVarFlag = &cli.StringFlag{
	Name:  "env-var",
	Value: storage.DefaultEnvVar,
	Usage: "environment variable holding the storage URL",
}

var defaultURLFlag = &cli.StringFlag{
	Name:  "default",
	Value: "",
	Usage: "storage URL to use when the environment variable is unset or empty",
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "storageurl",
		Usage:     "Turn storage URLs into storage backend configuration",
		Flags:     flags.LogFlags,
		Writer:    stdout,
		ErrWriter: stderr,

		// URLs may contain commas
		DisableSliceFlagSeparator: true,

		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "resolve storage URLs and print their configuration as JSON",
				ArgsUsage: "[url...]",
				Flags:     []cli.Flag{aliasFlag, prettyFlag},
				Action:    parseAction,
			},
			{
				Name:   "env",
				Usage:  "resolve the storage URL held in an environment variable",
				Flags:  []cli.Flag{envVarFlag, defaultURLFlag, prettyFlag},
				Action: envAction,
			},
		},
	}
}

func parseAction(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)
	resolver := storage.NewConfigResolver(logger)
	pretty := cCtx.Bool(prettyFlag.Name)

	aliases := cCtx.StringSlice(aliasFlag.Name)
	if len(aliases) > 0 {
		if cCtx.Args().Present() {
			return errors.New("use either --alias or URL arguments, not both")
		}

		urls, err := parseAliases(aliases)
		if err != nil {
			return err
		}

		configs, err := resolver.ResolveStorages(urls)
		if err != nil {
			logger.Error("Failed to resolve storages", "err", err)
			return err
		}
		return writeJSON(cCtx.App.Writer, configs, pretty)
	}

	if !cCtx.Args().Present() {
		return errors.New("no storage URL given")
	}

	for _, rawURL := range cCtx.Args().Slice() {
		cfg, err := resolver.Resolve(rawURL)
		if err != nil {
			logger.Error("Failed to resolve storage URL", "err", err)
			return err
		}
		if err := writeJSON(cCtx.App.Writer, cfg, pretty); err != nil {
			return err
		}
	}
	return nil
}

func envAction(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)
	resolver := storage.NewConfigResolver(logger)

	cfg, err := resolver.FromEnv(cCtx.String(envVarFlag.Name), cCtx.String(defaultURLFlag.Name))
	if err != nil {
		logger.Error("Failed to resolve storage URL from environment", "err", err)
		return err
	}
	return writeJSON(cCtx.App.Writer, cfg, cCtx.Bool(prettyFlag.Name))
}

// parseAliases splits name=url pairs. The URL may itself contain "=".
func parseAliases(pairs []string) (map[string]string, error) {
	urls := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, rawURL, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid alias %q, expected name=url", pair)
		}
		if _, dup := urls[name]; dup {
			return nil, fmt.Errorf("duplicate alias %q", name)
		}
		urls[name] = rawURL
	}
	return urls, nil
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
