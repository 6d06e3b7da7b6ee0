package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kg-3rd/grand-adventure-hub/internal/client"
)

var uploadConcurrency int

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage bucket media and display order",
}

var mediaListCmd = &cobra.Command{
	Use:   "list [bucket]",
	Short: "List a bucket's media in display order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		view := client.NewBucketView(api, args[0])
		if err := view.Refresh(context.Background()); err != nil {
			fmt.Printf("Error listing media: %v\n", err)
			return
		}
		for i, item := range view.Items() {
			fmt.Printf("%3d  %-12s %s\n", i+1, item.Kind, item.Name)
		}
	},
}

var mediaUploadCmd = &cobra.Command{
	Use:   "upload [bucket] [file...]",
	Short: "Upload one or more files to a bucket",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		bucket := args[0]

		var files []client.File
		for _, path := range args[1:] {
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Printf("Error reading %s: %v\n", path, err)
				return
			}
			files = append(files, client.File{
				Name:        filepath.Base(path),
				Data:        data,
				ContentType: mime.TypeByExtension(filepath.Ext(path)),
			})
		}

		outcomes := api.UploadBatch(context.Background(), bucket, files, uploadConcurrency)
		failed := 0
		for _, o := range outcomes {
			if o.Err != nil {
				failed++
				fmt.Printf("FAIL %s: %v\n", o.Name, o.Err)
				continue
			}
			fmt.Printf("OK   %s -> %s\n", o.Name, o.URL)
		}
		if failed > 0 {
			fmt.Printf("%d of %d uploads failed\n", failed, len(outcomes))
			os.Exit(1)
		}
	},
}

var mediaMoveCmd = &cobra.Command{
	Use:   "move [bucket] [name] [delta]",
	Short: "Move an item within the display order and save",
	Long:  "Shifts the named item by delta positions (negative moves toward the front) and saves the resulting order",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		delta, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Printf("Error: delta must be an integer, got %q\n", args[2])
			return
		}

		ctx := context.Background()
		view := client.NewBucketView(api, args[0])
		if err := view.Refresh(ctx); err != nil {
			fmt.Printf("Error listing media: %v\n", err)
			return
		}
		if !view.Move(args[1], delta) {
			fmt.Printf("No change: %q not found or already at the boundary\n", args[1])
			return
		}
		if err := view.SaveOrder(ctx); err != nil {
			fmt.Printf("Error saving order: %v\n", err)
			return
		}
		fmt.Println("Order saved")
	},
}

var mediaSaveOrderCmd = &cobra.Command{
	Use:   "save-order [bucket] [name...]",
	Short: "Replace a bucket's display order with the given sequence",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := api.SaveOrder(context.Background(), args[0], args[1:]); err != nil {
			fmt.Printf("Error saving order: %v\n", err)
			return
		}
		fmt.Println("Order saved")
	},
}

var mediaDeleteCmd = &cobra.Command{
	Use:   "delete [bucket] [path]",
	Short: "Delete an object from a bucket",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := api.Delete(context.Background(), args[0], args[1]); err != nil {
			fmt.Printf("Error deleting object: %v\n", err)
			return
		}
		fmt.Printf("Deleted %s\n", args[1])
	},
}

func init() {
	mediaUploadCmd.Flags().IntVar(&uploadConcurrency, "concurrency", 4, "parallel uploads")

	mediaCmd.AddCommand(mediaListCmd)
	mediaCmd.AddCommand(mediaUploadCmd)
	mediaCmd.AddCommand(mediaMoveCmd)
	mediaCmd.AddCommand(mediaSaveOrderCmd)
	mediaCmd.AddCommand(mediaDeleteCmd)
}
