package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	userHandler userHandler
	postHandler postHandler
	tagHandler  tagHandler
}

// UserRequest carries the form fields for creating or updating a user
type UserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ImageURL  string `json:"imageUrl"`
}

// PostRequest carries the form fields for creating or updating a post.
// TagIDs is only honored on creation; edits reconcile tags through the
// dedicated tags route.
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	TagIDs  []uint `json:"tagIds"`
}

// TagRequest carries the form fields for creating or updating a tag
type TagRequest struct {
	Name    string `json:"name"`
	PostIDs []uint `json:"postIds"`
}

// SetTagsRequest carries the target association set for a post
type SetTagsRequest struct {
	TagIDs []uint `json:"tagIds"`
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}
