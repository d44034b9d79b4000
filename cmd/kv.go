package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saravenpi/parley/internal/errors"
	"github.com/saravenpi/parley/internal/storage"
)

var (
	kvText      bool
	skipConfirm bool
)

var kvCmd = &cobra.Command{
	Use:   "kv",
	Short: "Inspect and edit the local key/value store",
	Long: `Reads and writes the store Parley keeps its preferences and sent
messages in. Values that parse as JSON are stored as JSON unless --text is
given; anything else is stored as plain text.`,
}

var kvGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value stored under key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *storage.Store) error {
			return kvGet(cmd, s, args[0])
		})
	},
}

var kvSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store value under key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *storage.Store) error {
			return s.Put(cmd.Context(), args[0], parseValue(args[1], kvText))
		})
	},
}

var kvRmCmd = &cobra.Command{
	Use:     "rm <key>",
	Aliases: []string{"delete"},
	Short:   "Remove key",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *storage.Store) error {
			return s.Delete(cmd.Context(), args[0])
		})
	},
}

var kvListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *storage.Store) error {
			keys, err := s.Keys(cmd.Context())
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		})
	},
}

var kvClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every key, including saved preferences and sent messages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !skipConfirm && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Remove all stored data?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return withStore(cmd, func(s *storage.Store) error {
			if err := s.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Store cleared.")
			return nil
		})
	},
}

func init() {
	kvSetCmd.Flags().BoolVar(&kvText, "text", false, "Store the value as plain text even if it is valid JSON")
	kvClearCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")

	kvCmd.AddCommand(kvGetCmd, kvSetCmd, kvRmCmd, kvListCmd, kvClearCmd)
	rootCmd.AddCommand(kvCmd)
}

func withStore(cmd *cobra.Command, fn func(*storage.Store) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func kvGet(cmd *cobra.Command, s *storage.Store, key string) error {
	value, found, err := s.Get(cmd.Context(), key)
	if err != nil {
		return err
	}
	if !found {
		return errors.E(errors.Op("kv.get"), errors.KindNotFound, fmt.Sprintf("no value stored under %q", key))
	}

	out := cmd.OutOrStdout()
	if text, ok := value.(string); ok {
		fmt.Fprintln(out, text)
		return nil
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format value: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// parseValue decodes raw as JSON when it is valid JSON and asText is false.
func parseValue(raw string, asText bool) any {
	if asText || !json.Valid([]byte(raw)) {
		return raw
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

// confirm asks a yes/no question on out and reads the answer from in.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
