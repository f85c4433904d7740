// Command cascade inspects a project's effective configuration and
// resolves logical asset paths against it.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/cascadekit/cascade"
)

var (
	configFile string
	scopeName  string
)

func main() {
	root := &cobra.Command{
		Use:           "cascade",
		Short:         "Inspect configuration and resolve asset URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file (default: discovered)")
	root.PersistentFlags().StringVar(&scopeName, "name", "cli", "configuration scope name")

	root.AddCommand(newDumpCmd(), newResolveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cascade:", err)
		os.Exit(1)
	}
}

func loadConfiguration() (*cascade.Configuration, error) {
	b := cascade.NewBuilder(scopeName).WithEnvPrefix("CASCADE_")
	if configFile != "" {
		b.WithFile(configFile)
	} else {
		b.WithFileDiscovery(cascade.DefaultDiscoveryOptions("cascade"))
	}

	cfg, err := b.Build()
	if err != nil && !errors.Is(err, cascade.ErrConfigNotFound) {
		return nil, err
	}
	return cfg, nil
}

func newDumpCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration()
			if err != nil {
				return err
			}
			if output != "" {
				return cfg.SaveFile(output)
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg.Serializable())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func newResolveCmd() *cobra.Command {
	var (
		kindName string
		sprites  bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <logical-path>",
		Short: "Resolve a logical asset path to a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration()
			if err != nil {
				return err
			}

			var kind cascade.AssetKind
			switch kindName {
			case "image":
				kind = cascade.AssetImage
			case "font":
				kind = cascade.AssetFont
			case "generated":
				kind = cascade.AssetGeneratedImage
			default:
				return fmt.Errorf("unknown asset kind %q, expected image, font or generated", kindName)
			}

			resolver := cfg.URLResolver()
			if sprites {
				resolver = cfg.SpriteResolver()
			}

			url, found, err := resolver.Resolve(args[0], kind)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s matches no asset collection\n", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", "image", "asset kind: image, font or generated")
	cmd.Flags().BoolVar(&sprites, "sprites", false, "use the sprite-source resolver")
	return cmd
}
