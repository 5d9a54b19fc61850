// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"jewelrycatalog/internal/admin"
	"jewelrycatalog/internal/database"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Maintain the jewelry catalog",
		Long: `catalogctl applies migrations, loads seed data and performs the catalog
writes that the read-only API does not expose. Configuration comes from the
same environment variables as the API server.

Every write purges the API response cache and records the purge in the
cache invalidation log.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMigrateCmd(a),
		newSeedCmd(a),
		newCategoryCmd(a),
		newImageCmd(a),
		newStockCmd(a),
		newCacheLogCmd(a),
	)
	return root
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.database(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample jewelry catalog into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.database()
			if err != nil {
				return err
			}
			if err := database.Seed(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seed complete")
			return nil
		},
	}
}

func newCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Create, move and delete categories",
	}

	var in admin.NewCategory
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a category with one translation",
		Long: `Create a category. The slug is derived from NAME unless --slug is given.

Examples:
  catalogctl category create "Rings" --lang en --parent jewelry
  catalogctl category create "Boucles d'oreilles" --lang fr --order 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.writer(cmd.Context())
			if err != nil {
				return err
			}
			in.Name = args[0]
			c, err := w.CreateCategory(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created category %d (%s)\n", c.ID, c.Slug)
			return nil
		},
	}
	create.Flags().StringVar(&in.Language, "lang", "en", "language of NAME")
	create.Flags().StringVar(&in.Slug, "slug", "", "explicit slug")
	create.Flags().StringVar(&in.ParentSlug, "parent", "", "parent category slug")
	create.Flags().StringVar(&in.Description, "description", "", "translated description")
	create.Flags().IntVar(&in.SortOrder, "order", 0, "sort order among siblings")
	create.Flags().BoolVar(&in.Inactive, "inactive", false, "create the category hidden")

	reparent := &cobra.Command{
		Use:   "reparent SLUG [PARENT_SLUG]",
		Short: "Move a category under another one, or to the root",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent := ""
			if len(args) == 2 {
				parent = args[1]
			}
			w, err := a.writer(cmd.Context())
			if err != nil {
				return err
			}
			if err := w.ReparentCategory(cmd.Context(), args[0], parent); err != nil {
				return err
			}
			if parent == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "moved %s to the root\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "moved %s under %s\n", args[0], parent)
			}
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete SLUG",
		Short: "Delete a category and its subcategories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.writer(cmd.Context())
			if err != nil {
				return err
			}
			if err := w.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(create, reparent, del)
	return cmd
}

func newImageCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Attach, promote and remove product images",
	}

	var (
		key     string
		alt     string
		order   int
		primary bool
	)
	add := &cobra.Command{
		Use:   "add SKU [FILE]",
		Short: "Attach an image to a product",
		Long: `Attach an image to a product. FILE is uploaded to object storage;
without FILE, --key names an object that already exists.

Examples:
  catalogctl image add RG001 ./ring-front.jpg --primary --alt "Front view"
  catalogctl image add RG001 --key https://cdn.example.com/rg001.jpg`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := admin.NewImage{SKU: args[0], Key: key, AltText: alt, SortOrder: order, Primary: primary}
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				info, err := f.Stat()
				if err != nil {
					return err
				}
				in.Body, in.Filename, in.Size = f, filepath.Base(args[1]), info.Size()
			}

			w, err := a.writer(cmd.Context())
			if err != nil {
				return err
			}
			img, err := w.AddImage(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added image %d (%s) to %s\n", img.ID, img.Image, args[0])
			return nil
		},
	}
	add.Flags().StringVar(&key, "key", "", "existing object key or URL")
	add.Flags().StringVar(&alt, "alt", "", "alternative text")
	add.Flags().IntVar(&order, "order", 0, "sort order among the product's images")
	add.Flags().BoolVar(&primary, "primary", false, "make this the primary image")

	setPrimary := &cobra.Command{
		Use:   "primary SKU IMAGE_ID",
		Short: "Make an image the product's primary image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			w, err := a.writer(cmd.Context())
			if err != nil {
				return err
			}
			if err := w.SetPrimaryImage(cmd.Context(), args[0], id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "image %d is now primary for %s\n", id, args[0])
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete IMAGE_ID",
		Short: "Remove an image and its stored file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			w, err := a.writer(cmd.Context())
			if err != nil {
				return err
			}
			if err := w.DeleteImage(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted image %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, setPrimary, del)
	return cmd
}

func newStockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stock SKU QUANTITY",
		Short: "Set a product's stock quantity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil || qty < 0 {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			w, err := a.writer(cmd.Context())
			if err != nil {
				return err
			}
			if err := w.UpdateStock(cmd.Context(), args[0], qty); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s stock set to %d\n", args[0], qty)
			return nil
		},
	}
}

func newCacheLogCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "cache-log",
		Short: "Show recent cache invalidations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.writer(cmd.Context()); err != nil {
				return err
			}
			entries, err := a.cacheLog.RecentEntries(cmd.Context(), limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WHEN\tENTITY\tID\tACTION")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.InvalidatedAt.Format(time.RFC3339), e.EntityType, e.EntityID, e.Action)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of entries to show")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
