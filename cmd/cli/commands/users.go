package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// userOutput represents the filtered output for a user
type userOutput struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	RatingsCount int     `json:"ratings_count"`
}

// userListOutput represents the filtered output for a list of users
type userListOutput struct {
	Users []userOutput `json:"users"`
}

func init() {
	usersCmd.AddCommand(listUsersCmd)
	usersCmd.AddCommand(getUserCmd)

	listUsersCmd.Flags().IntP("page", "p", 1, "Page of users to fetch")

	getUserCmd.Flags().UintP("id", "i", 0, "User ID to fetch")
	_ = getUserCmd.MarkFlagRequired("id")
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Browse users",
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List users, best rated first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, _ := cmd.Flags().GetInt("page")

		users, err := apiClient.GetUsers(context.Background(), page)
		if err != nil {
			return fmt.Errorf("error fetching users: %w", err)
		}

		output := userListOutput{
			Users: make([]userOutput, len(users)),
		}
		for i, user := range users {
			output.Users[i] = userOutput{
				ID:           user.ID,
				Name:         user.Name,
				Rating:       user.Rating,
				RatingsCount: user.RatingsCount,
			}
		}

		prettyJSON, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("error formatting response: %w", err)
		}
		fmt.Println(string(prettyJSON))
		return nil
	},
}

var getUserCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a specific user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, _ := cmd.Flags().GetUint("id")

		user, err := apiClient.GetUserByID(context.Background(), userID)
		if err != nil {
			return fmt.Errorf("error fetching user: %w", err)
		}

		prettyJSON, err := json.MarshalIndent(user, "", "  ")
		if err != nil {
			return fmt.Errorf("error formatting response: %w", err)
		}
		fmt.Println(string(prettyJSON))
		return nil
	},
}
