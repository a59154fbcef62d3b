package handler

type createPostRequest struct {
	Title    string `json:"title"    validate:"required"`
	Content  string `json:"content"  validate:"required"`
	Category string `json:"category" validate:"required,oneof=General 'Stream Selection' 'Memory Techniques' 'Career Guidance'"`
}
