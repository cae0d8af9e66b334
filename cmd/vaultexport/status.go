package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/aretw0/vaultexport/internal/platform"
	"github.com/aretw0/vaultexport/pkg/core"
)

type statusReport struct {
	Vault      string                `json:"vault"`
	Categories []core.CategoryStatus `json:"categories"`
	Notes      []core.VaultEntry     `json:"notes"`
}

func newStatusCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Summarize checklist progress of the notes in the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, entries, err := platform.Status(cmd.Context(), a.cfg.VaultPath, platform.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(statusReport{Vault: a.cfg.VaultPath, Categories: summary, Notes: entries})
			}

			if len(summary) == 0 {
				fmt.Fprintf(out, "No resource notes found in %s\n", a.cfg.VaultPath)
				return nil
			}
			fmt.Fprintln(out, statusTable(summary))
			fmt.Fprintf(out, "%d resource notes in %s\n", len(entries), a.cfg.VaultPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func statusTable(summary []core.CategoryStatus) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CATEGORY", "NOTES", core.StatusReviewed, core.StatusInstalled, core.StatusIntegrated).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, s := range summary {
		t.Row(s.Category,
			strconv.Itoa(s.Total),
			strconv.Itoa(s.Reviewed),
			strconv.Itoa(s.Installed),
			strconv.Itoa(s.Integrated),
		)
	}
	return t
}
