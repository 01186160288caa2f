package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xdao.co/hashid/hashid"
	"xdao.co/hashid/store"
)

// newStoreCommand constructs the `store` command group and subcommands.
func newStoreCommand(app *App) *cobra.Command {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Content-addressed blob store operations",
		Long: "Stores immutable blobs keyed by their identifier and retrieves them by it.\n" +
			"The store root comes from --dir, HASHID_STORE_DIR, or the OS cache location.",
	}
	storeCmd.PersistentFlags().String("dir", app.Config.StoreDir, "Store root directory")
	storeCmd.AddCommand(
		newStorePutCommand(app),
		newStoreGetCommand(app),
		newStoreHasCommand(app),
	)
	return storeCmd
}

func openStore(cmd *cobra.Command) (*store.FS, error) {
	dir, _ := cmd.Flags().GetString("dir")
	return store.NewFS(dir)
}

// newStorePutCommand constructs the `store put` subcommand.
func newStorePutCommand(app *App) *cobra.Command {
	putCmd := &cobra.Command{
		Use:   "put <file ...>",
		Short: "Store blobs and print their identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			for _, path := range args {
				blob, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				id, err := st.Put(blob)
				if err != nil {
					return fmt.Errorf("store %s: %w", path, err)
				}
				app.Logger.Debug("stored blob", "path", path, "id", id)
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", id, path)
			}
			return nil
		},
	}
	return putCmd
}

// newStoreGetCommand constructs the `store get` subcommand.
func newStoreGetCommand(app *App) *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get <hex>",
		Short: "Write a stored blob to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			id, err := hashid.FromHexString(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			blob, err := st.Get(id)
			if err != nil {
				return fmt.Errorf("get %s: %w", id, err)
			}
			_, err = cmd.OutOrStdout().Write(blob)
			return err
		},
	}
	return getCmd
}

// newStoreHasCommand constructs the `store has` subcommand.
func newStoreHasCommand(app *App) *cobra.Command {
	hasCmd := &cobra.Command{
		Use:   "has <hex>",
		Short: "Check whether a blob is stored (non-zero exit when absent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			id, err := hashid.FromHexString(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			if !st.Has(id) {
				return fmt.Errorf("%s: %w", id, store.ErrNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	return hasCmd
}
