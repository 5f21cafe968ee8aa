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

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review commands",
	Long:  `Write reviews (0-10) of an anime, a season or a single episode, and read them.`,
}

var createReviewCmd = &cobra.Command{
	Use:   "create [anime-id] [rating]",
	Short: "Write a review; one per episode",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid rating: %w", err)
		}
		if rating < 0 || rating > 10 {
			return fmt.Errorf("rating must be between 0 and 10")
		}

		req := dto.CreateReviewRequest{
			AnimeID: dto.FlexID(args[0]),
			Rating:  &rating,
		}
		req.AnimeTitle, _ = cmd.Flags().GetString("anime-title")
		req.Title, _ = cmd.Flags().GetString("title")
		req.Content, _ = cmd.Flags().GetString("content")
		if req.SeasonNumber, err = intFlag(cmd, "season"); err != nil {
			return err
		}
		if req.EpisodeNumber, err = intFlag(cmd, "episode"); err != nil {
			return err
		}

		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		review, err := httpClient.CreateReview(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}
		color.Green("✓ Review posted!")
		printReview(*review)
		return nil
	},
}

var animeReviewsCmd = &cobra.Command{
	Use:   "anime [anime-id]",
	Short: "List reviews of an anime, optionally for one season or episode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		season, err := intFlag(cmd, "season")
		if err != nil {
			return err
		}
		episode, err := intFlag(cmd, "episode")
		if err != nil {
			return err
		}
		if episode.Set && !season.Set {
			return fmt.Errorf("--episode needs --season")
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		reviews, err := client.NewHTTPClient(apiURL).AnimeReviews(ctx, args[0], season, episode)
		if err != nil {
			return fmt.Errorf("failed to list reviews: %w", err)
		}
		printReviews(reviews)
		return nil
	},
}

var myReviewsCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your reviews, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		reviews, err := httpClient.MyReviews(ctx)
		if err != nil {
			return fmt.Errorf("failed to list reviews: %w", err)
		}
		printReviews(reviews)
		return nil
	},
}

func init() {
	reviewCmd.AddCommand(createReviewCmd, animeReviewsCmd, myReviewsCmd)

	createReviewCmd.Flags().String("anime-title", "", "Title of the anime")
	createReviewCmd.Flags().String("title", "", "Review headline")
	createReviewCmd.Flags().String("content", "", "Review text")
	createReviewCmd.Flags().Int("season", 0, "Season number")
	createReviewCmd.Flags().Int("episode", 0, "Episode number")
	_ = createReviewCmd.MarkFlagRequired("anime-title")
	_ = createReviewCmd.MarkFlagRequired("title")
	_ = createReviewCmd.MarkFlagRequired("content")

	animeReviewsCmd.Flags().Int("season", 0, "Season number")
	animeReviewsCmd.Flags().Int("episode", 0, "Episode number")
}

// intFlag reads an int flag, unset unless the user passed it.
func intFlag(cmd *cobra.Command, name string) (dto.OptionalInt, error) {
	if !cmd.Flags().Changed(name) {
		return dto.OptionalInt{}, nil
	}
	n, err := cmd.Flags().GetInt(name)
	if err != nil {
		return dto.OptionalInt{}, err
	}
	return dto.IntOf(n), nil
}

func printReviews(reviews []dto.ReviewResponse) {
	if len(reviews) == 0 {
		fmt.Println("No reviews found.")
		return
	}
	for _, r := range reviews {
		printReview(r)
		fmt.Println(strings.Repeat("-", 50))
	}
}

func printReview(r dto.ReviewResponse) {
	where := r.AnimeTitle
	if r.SeasonNumber != nil {
		where += fmt.Sprintf(" S%d", *r.SeasonNumber)
	}
	if r.EpisodeNumber != nil {
		where += fmt.Sprintf(" E%d", *r.EpisodeNumber)
	}
	fmt.Printf("%s: %s (%.1f/10)\n", where, r.Title, r.Rating)
	if r.User.Username != "" {
		color.Cyan("By: %s", r.User.Username)
	}
	fmt.Println(r.Content)
	fmt.Printf("Posted at: %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
}
