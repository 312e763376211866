package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jobboard-backend/internal/figures"
)

var idFlags struct {
	feature string
	target  string
}

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Print a fresh figure identifier",
	RunE:  runID,
}

func init() {
	f := idCmd.Flags()
	f.StringVar(&idFlags.feature, "feature", "", "Feature column (required)")
	f.StringVar(&idFlags.target, "target", "", "Target column (required)")

	_ = idCmd.MarkFlagRequired("feature")
	_ = idCmd.MarkFlagRequired("target")
}

func runID(cmd *cobra.Command, _ []string) error {
	id := figures.NewIDGenerator().New(idFlags.feature, idFlags.target)
	fmt.Fprintln(cmd.OutOrStdout(), id.String())
	return nil
}
