package tags

type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Slug  string `json:"slug" validate:"required,max=200,slug"`
	Color string `json:"color" validate:"required,color"`
}
