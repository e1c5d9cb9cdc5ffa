package validators

// Field describes how a single body key is validated.
type Field struct {
	Name string
	// Optional fields are skipped when absent or null.
	Optional bool
	Rules    []Rule
}

// Schema is an ordered set of field rules.
type Schema struct {
	Name   string
	Fields []Field
}

// Request schemas used by the HTTP handlers.
var (
	RegisterUserSchema = Schema{
		Name: "register user",
		Fields: []Field{
			{Name: "name", Rules: []Rule{NotEmpty, IsString}},
			{Name: "email", Rules: []Rule{NotEmpty, IsEmail}},
			{Name: "password", Rules: []Rule{NotEmpty, StrongPassword}},
		},
	}

	CreatePostSchema = Schema{
		Name: "create post",
		Fields: []Field{
			{Name: "title", Rules: []Rule{NotEmpty, IsString}},
			{Name: "content", Rules: []Rule{NotEmpty, IsString}},
		},
	}

	UpdatePostSchema = Schema{
		Name: "update post",
		Fields: []Field{
			{Name: "title", Optional: true, Rules: []Rule{NotEmpty, IsString}},
			{Name: "content", Optional: true, Rules: []Rule{NotEmpty, IsString}},
		},
	}

	CreateCommentSchema = Schema{
		Name: "create comment",
		Fields: []Field{
			{Name: "post_id", Rules: []Rule{IsNumber}},
			{Name: "content", Rules: []Rule{NotEmpty, IsString}},
		},
	}
)
