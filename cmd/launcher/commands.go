package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyhaven/launcher/internal/config"
)

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(initCmd)
}

// showCmd loads the config file and prints the resulting configuration.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	Long: `Load the configuration from disk and print it as JSON.

If no config file exists yet, the built-in defaults are shown instead.`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	store := config.Get()

	done, err := store.StartLoad(cmd.Context())
	if err != nil {
		return err
	}
	if err := <-done; err != nil {
		var notFound *config.FileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		fmt.Fprintf(os.Stderr, "no config file at %s, showing defaults\n", store.ConfigPath())
	}

	data, err := config.NewCodec().Encode(store.Snapshot())
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// pathCmd prints the resolved storage location.
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.Get()
		fmt.Println(store.ConfigPath())
		if _, err := os.Stat(store.ConfigPath()); errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stderr, "(file does not exist yet)")
		}
		return nil
	},
}

// initCmd writes the built-in default configuration to disk.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to disk",
	Long: `Write the built-in default configuration to the config file.

Any existing config file is overwritten, so this is also a way to reset
a broken configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.Get()

		done, err := store.StartSave(cmd.Context())
		if err != nil {
			return err
		}
		if err := <-done; err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", store.ConfigPath())
		return nil
	},
}
