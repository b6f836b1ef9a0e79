package request

type RespondToNotificationRequest struct {
	Response string `json:"response" binding:"required,max=500"`
}
