package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cutline/internal/config"
	"cutline/internal/projectstore"
	"cutline/internal/timeline"
)

func newProjectCommand(ctx *commandContext) *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the project library",
	}

	projectCmd.AddCommand(newProjectListCommand(ctx))
	projectCmd.AddCommand(newProjectCreateCommand(ctx))
	projectCmd.AddCommand(newProjectShowCommand(ctx))
	projectCmd.AddCommand(newProjectRenameCommand(ctx))
	projectCmd.AddCommand(newProjectDeleteCommand(ctx))

	return projectCmd
}

type projectSummaryView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func summaryView(s projectstore.Summary) projectSummaryView {
	return projectSummaryView{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt.Local().Format(time.DateTime),
		UpdatedAt: s.UpdatedAt.Local().Format(time.DateTime),
	}
}

func newProjectListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *projectstore.Store) error {
				summaries, err := store.List(cmd.Context())
				if err != nil {
					return fmt.Errorf("list projects: %w", err)
				}

				if asJSON {
					views := make([]projectSummaryView, 0, len(summaries))
					for _, s := range summaries {
						views = append(views, summaryView(s))
					}
					return writeJSON(cmd, views)
				}

				out := cmd.OutOrStdout()
				if len(summaries) == 0 {
					fmt.Fprintln(out, "Library is empty")
					return nil
				}

				if !isTerminal(out) {
					for _, s := range summaries {
						fmt.Fprintf(out, "%s\t%s\n", s.ID, s.Name)
					}
					return nil
				}

				rows := make([][]string, 0, len(summaries))
				for _, s := range summaries {
					v := summaryView(s)
					rows = append(rows, []string{v.ID, v.Name, v.CreatedAt, v.UpdatedAt})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Name", "Created", "Updated"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newProjectCreateCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return errors.New("project name is required")
			}
			return ctx.withStore(func(cfg *config.Config, store *projectstore.Store) error {
				tl := &timeline.Timeline{
					Clips: []timeline.Clip{},
					Output: &timeline.Output{
						Width:        cfg.Output.Width,
						Height:       cfg.Output.Height,
						FPS:          cfg.Output.FPS,
						VideoBitrate: cfg.Output.VideoBitrate,
						AudioBitrate: cfg.Output.AudioBitrate,
						Format:       cfg.Output.Format,
					},
				}
				project, err := store.Create(cmd.Context(), name, tl)
				if err != nil {
					return fmt.Errorf("create project: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", project.Name, project.ID)
				return nil
			})
		},
	}
	return cmd
}

func newProjectShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one project's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *projectstore.Store) error {
				project, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("load project: %w", err)
				}
				if project == nil {
					return fmt.Errorf("project %s not found", args[0])
				}

				if asJSON {
					return writeJSON(cmd, project)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:       %s\n", project.ID)
				fmt.Fprintf(out, "Name:     %s\n", project.Name)
				fmt.Fprintf(out, "Created:  %s\n", project.CreatedAt.Local().Format(time.DateTime))
				fmt.Fprintf(out, "Updated:  %s\n", project.UpdatedAt.Local().Format(time.DateTime))
				if tl := project.Timeline; tl != nil {
					fmt.Fprintf(out, "Clips:    %d\n", len(tl.Clips))
					fmt.Fprintf(out, "Markers:  %d\n", len(tl.Markers))
					fmt.Fprintf(out, "Groups:   %d\n", len(tl.Groups))
					fmt.Fprintf(out, "Duration: %s\n", formatSeconds(tl.Duration()))
					if tl.Output != nil {
						fmt.Fprintf(out, "Output:   %dx%d @ %g fps (%s)\n",
							tl.Output.Width, tl.Output.Height, tl.Output.FPS, tl.Output.Format)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func newProjectRenameCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[1])
			if name == "" {
				return errors.New("new name is required")
			}
			return ctx.withStore(func(_ *config.Config, store *projectstore.Store) error {
				if err := store.Rename(cmd.Context(), args[0], name); err != nil {
					if errors.Is(err, projectstore.ErrProjectNotFound) {
						return fmt.Errorf("project %s not found", args[0])
					}
					return fmt.Errorf("rename project: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed project %s to %s\n", args[0], name)
				return nil
			})
		},
	}
	return cmd
}

func newProjectDeleteCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *projectstore.Store) error {
				if err := store.Delete(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("delete project: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])
				return nil
			})
		},
	}
	return cmd
}

func formatSeconds(seconds float64) string {
	if seconds <= 0 {
		return "0:00"
	}
	total := int(seconds)
	minutes := total / 60
	secs := total % 60
	frac := seconds - float64(total)
	if frac >= 0.5 {
		secs++
		if secs == 60 {
			secs = 0
			minutes++
		}
	}
	return strconv.Itoa(minutes) + ":" + fmt.Sprintf("%02d", secs)
}
