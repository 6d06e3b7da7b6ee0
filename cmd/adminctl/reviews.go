package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Moderate visitor reviews",
}

var reviewsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List reviews awaiting moderation",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reviews, err := api.PendingReviews(context.Background())
		if err != nil {
			fmt.Printf("Error listing reviews: %v\n", err)
			return
		}
		if len(reviews) == 0 {
			fmt.Println("No pending reviews")
			return
		}
		for _, r := range reviews {
			fmt.Printf("#%d  %d/5  %s\n     %s\n", r.ID, r.Rating, r.Name, r.Comment)
		}
	},
}

var reviewsApproveCmd = &cobra.Command{
	Use:   "approve [id]",
	Short: "Approve a review for public display",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: id must be an integer, got %q\n", args[0])
			return
		}
		if err := api.ApproveReview(context.Background(), id); err != nil {
			fmt.Printf("Error approving review: %v\n", err)
			return
		}
		fmt.Printf("Approved review %d\n", id)
	},
}

var reviewsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a review",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: id must be an integer, got %q\n", args[0])
			return
		}
		if err := api.DeleteReview(context.Background(), id); err != nil {
			fmt.Printf("Error deleting review: %v\n", err)
			return
		}
		fmt.Printf("Deleted review %d\n", id)
	},
}

func init() {
	reviewsCmd.AddCommand(reviewsPendingCmd)
	reviewsCmd.AddCommand(reviewsApproveCmd)
	reviewsCmd.AddCommand(reviewsDeleteCmd)
}
