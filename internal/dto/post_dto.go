package dto

type PostRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"`
}

type CommentRequest struct {
	PostID string `json:"postId" validate:"required,uuid"`
	Body   string `json:"body" validate:"required"`
}

type CommentUpdateRequest struct {
	Body string `json:"body" validate:"required"`
}

type UserUpdateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
