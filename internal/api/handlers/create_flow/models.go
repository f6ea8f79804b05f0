package create_flow

// CreateFlowRequest HTTP request model
type CreateFlowRequest struct {
	CourseID string `json:"courseId"`
}
