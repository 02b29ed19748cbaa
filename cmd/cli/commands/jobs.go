package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// jobOutput represents the filtered output for a job
type jobOutput struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Payment string `json:"payment"`
	Status  string `json:"status"`
}

// jobListOutput represents the filtered output for a list of jobs
type jobListOutput struct {
	Jobs []jobOutput `json:"jobs"`
}

func init() {
	jobsCmd.AddCommand(listJobsCmd)
	jobsCmd.AddCommand(getJobCmd)

	listJobsCmd.Flags().IntP("page", "p", 1, "Page of jobs to fetch")

	getJobCmd.Flags().UintP("id", "i", 0, "Job ID to fetch")
	_ = getJobCmd.MarkFlagRequired("id")
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse jobs",
}

var listJobsCmd = &cobra.Command{
	Use:   "list",
	Short: "List open jobs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, _ := cmd.Flags().GetInt("page")

		jobs, err := apiClient.GetJobs(context.Background(), page)
		if err != nil {
			return fmt.Errorf("error fetching jobs: %w", err)
		}

		output := jobListOutput{
			Jobs: make([]jobOutput, len(jobs)),
		}
		for i, job := range jobs {
			output.Jobs[i] = jobOutput{
				ID:      job.ID,
				Title:   job.Title,
				Payment: job.Payment,
				Status:  job.Status.String(),
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

var getJobCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a specific job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobID, _ := cmd.Flags().GetUint("id")

		job, err := apiClient.GetJob(context.Background(), jobID)
		if err != nil {
			return fmt.Errorf("error fetching job: %w", err)
		}

		prettyJSON, err := json.MarshalIndent(job, "", "  ")
		if err != nil {
			return fmt.Errorf("error formatting response: %w", err)
		}
		fmt.Println(string(prettyJSON))
		return nil
	},
}
