package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/offerdesk/internal/export"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export, import or reset the session snapshot",
}

var snapshotOut string

var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the settings snapshot JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		s, err := e.loadState(ctx)
		if err != nil {
			return err
		}

		data, err := export.ExportJSON(s)
		if err != nil {
			return err
		}

		if snapshotOut == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(snapshotOut, data, 0o644); err != nil {
			return eris.Wrap(err, "write snapshot file")
		}
		fmt.Printf("Zapisano %s\n", snapshotOut)
		return nil
	},
}

var snapshotImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the session with a settings snapshot JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrap(err, "read snapshot file")
		}

		s, err := export.ImportJSON(data)
		if err != nil {
			return err
		}
		return e.saveState(ctx, s)
	},
}

var snapshotResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start a fresh session over the configured dictionaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		return e.saveState(ctx, e.freshState())
	},
}

func init() {
	snapshotExportCmd.Flags().StringVar(&snapshotOut, "out", "", "output file (default stdout)")
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotImportCmd)
	snapshotCmd.AddCommand(snapshotResetCmd)
	rootCmd.AddCommand(snapshotCmd)
}
