package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"animehub/cmd/cli/command/client"
	"animehub/internal/microservices/http-api/dto"
)

var ratingCmd = &cobra.Command{
	Use:   "rating",
	Short: "Season rating commands",
	Long:  `Rate the seasons of a show (0-5), list ratings and see a show's combined rating.`,
}

var submitRatingCmd = &cobra.Command{
	Use:   "submit [show-id] [season-number] [rating]",
	Short: "Rate one season of a show (0-5); rating again overwrites",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		season, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid season number: %w", err)
		}
		rating, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid rating: %w", err)
		}
		if rating < 0 || rating > 5 {
			return fmt.Errorf("rating must be between 0 and 5")
		}

		req := dto.SubmitSeasonRatingRequest{
			ShowID:       args[0],
			SeasonNumber: dto.IntOf(season),
			Rating:       &rating,
		}
		req.SeasonTitle, _ = cmd.Flags().GetString("title")
		if req.SeasonTitle == "" {
			req.SeasonTitle = fmt.Sprintf("Season %d", season)
		}
		req.Review, _ = cmd.Flags().GetString("review")
		if cmd.Flags().Changed("watched") {
			n, _ := cmd.Flags().GetInt("watched")
			req.EpisodesWatched = dto.IntOf(n)
		}
		if cmd.Flags().Changed("total") {
			n, _ := cmd.Flags().GetInt("total")
			req.TotalEpisodes = dto.IntOf(n)
		}

		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		result, err := httpClient.SubmitSeasonRating(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to submit rating: %w", err)
		}

		color.Green("✓ Rating saved!")
		printSeasonRating(*result)
		return nil
	},
}

var showRatingsCmd = &cobra.Command{
	Use:   "show [show-id]",
	Short: "List season ratings of a show and its combined rating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)
		userID := ""
		if mine, _ := cmd.Flags().GetBool("mine"); mine {
			if userID = currentUserID(); userID == "" {
				return fmt.Errorf("--mine needs a logged-in user")
			}
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		agg, err := httpClient.ShowAggregate(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get show rating: %w", err)
		}
		if agg.AverageRating == nil {
			color.Yellow("Show %s has no ratings yet.", agg.ShowID)
		} else {
			fmt.Printf("Show %s: %.2f/5 from %d ratings\n", agg.ShowID, *agg.AverageRating, agg.RatingCount)
		}

		ratings, err := httpClient.ShowRatings(ctx, args[0], userID)
		if err != nil {
			return fmt.Errorf("failed to list ratings: %w", err)
		}
		fmt.Println(strings.Repeat("-", 50))
		for _, r := range ratings {
			printSeasonRating(r)
			fmt.Println(strings.Repeat("-", 50))
		}
		return nil
	},
}

var myRatingsCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your season ratings, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		ratings, err := httpClient.MyRatings(ctx)
		if err != nil {
			return fmt.Errorf("failed to list ratings: %w", err)
		}
		if len(ratings) == 0 {
			fmt.Println("You have not rated anything yet.")
			return nil
		}
		for _, r := range ratings {
			fmt.Printf("%s [%s]\n", r.Show.Title, strings.Join(r.Show.Genres, ", "))
			printSeasonRating(r)
			fmt.Println(strings.Repeat("-", 50))
		}
		return nil
	},
}

var deleteRatingCmd = &cobra.Command{
	Use:   "delete [rating-id]",
	Short: "Delete one of your season ratings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := httpClient.DeleteSeasonRating(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete rating: %w", err)
		}
		color.Green("✓ Rating %s deleted.", args[0])
		return nil
	},
}

func init() {
	ratingCmd.AddCommand(submitRatingCmd, showRatingsCmd, myRatingsCmd, deleteRatingCmd)

	submitRatingCmd.Flags().String("title", "", "Season title (defaults to \"Season N\")")
	submitRatingCmd.Flags().String("review", "", "Short review text")
	submitRatingCmd.Flags().Int("watched", 0, "Episodes watched")
	submitRatingCmd.Flags().Int("total", 0, "Total episodes in the season")

	showRatingsCmd.Flags().Bool("mine", false, "Only show your own ratings")
}

func printSeasonRating(r dto.SeasonRatingResponse) {
	fmt.Printf("ID: %s\n", r.ID)
	fmt.Printf("Season %d (%s): %.1f/5\n", r.SeasonNumber, r.SeasonTitle, r.Rating)
	if r.TotalEpisodes > 0 {
		fmt.Printf("Watched: %d/%d\n", r.EpisodesWatched, r.TotalEpisodes)
	}
	if r.Review != "" {
		fmt.Printf("Review: %s\n", r.Review)
	}
	fmt.Printf("Updated at: %s\n", r.UpdatedAt.Format("2006-01-02 15:04:05"))
}
