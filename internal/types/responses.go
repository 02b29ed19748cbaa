package types

import "github.com/campusgig/campusgig/internal/db/models"

// ErrorResponse is the body returned for any failed request
type ErrorResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Bio          string  `json:"bio"`
	Rating       float64 `json:"rating"`
	RatingsCount int     `json:"ratings_count"`
	Token        string  `json:"token"`
}

// NewAuthResponse builds an AuthResponse from a user and token
func NewAuthResponse(user *models.User, token string) AuthResponse {
	return AuthResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Bio:          user.Bio,
		Rating:       user.Rating,
		RatingsCount: user.RatingsCount,
		Token:        token,
	}
}

// CountResponse is returned by unread-count endpoints
type CountResponse struct {
	Count int64 `json:"count"`
}

// ListJobsResponse is returned by job listing endpoints
type ListJobsResponse struct {
	Jobs []models.Job `json:"jobs"`
}

// ListApplicationsResponse is returned by application listing endpoints
type ListApplicationsResponse struct {
	Applications []models.Application `json:"applications"`
}

// ListRatingsResponse is returned by the user ratings endpoint
type ListRatingsResponse struct {
	Ratings []models.Rating `json:"ratings"`
}

// ListUsersResponse is returned by the user listing endpoint
type ListUsersResponse struct {
	Users []models.User `json:"users"`
}

// ListNotificationsResponse is returned by the notification listing endpoint
type ListNotificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
}

// ListMessagesResponse is returned by the conversation endpoint
type ListMessagesResponse struct {
	Messages []models.Message `json:"messages"`
}

// ListConversationsResponse is returned by the conversations endpoint
type ListConversationsResponse struct {
	Conversations []models.Conversation `json:"conversations"`
}
