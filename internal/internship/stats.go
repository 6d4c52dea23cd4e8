package internship

import "certifytrack-go/internal/common/models"

// ComputeStats derives an internship's summary counts from its already
// fetched tasks (with nested submissions) and enrollment rows. It never
// touches the database; a freshly created internship yields all zeros.
func ComputeStats(tasks []models.Task, subscriptions []models.Subscription) models.InternshipStats {
	stats := models.InternshipStats{
		TotalStudents: len(subscriptions),
		TotalTasks:    len(tasks),
	}

	for _, sub := range subscriptions {
		switch sub.Status {
		case models.SubscriptionActive:
			stats.ActiveStudents++
		case models.SubscriptionCompleted:
			stats.CompletedStudents++
		}
	}

	for _, task := range tasks {
		if task.IsMandatory {
			stats.MandatoryTasks++
		}

		switch task.DifficultyLevel {
		case models.DifficultyEasy:
			stats.TasksByDifficulty.Easy++
		case models.DifficultyMedium:
			stats.TasksByDifficulty.Medium++
		case models.DifficultyHard:
			stats.TasksByDifficulty.Hard++
		}

		for _, submission := range task.Submissions {
			stats.TotalSubmissions++
			switch submission.Status {
			case models.SubmissionPending:
				stats.PendingSubmissions++
			case models.SubmissionApproved:
				stats.ApprovedSubmissions++
			case models.SubmissionRejected:
				stats.RejectedSubmissions++
			}
		}
	}

	return stats
}
