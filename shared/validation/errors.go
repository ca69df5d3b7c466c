package validation

const (
	FieldTitle   = "title"
	FieldContent = "content"

	MsgTitleRequired   = "Title is required"
	MsgContentRequired = "Content is required"
)

// requiredMessages holds the message reported for an empty field
var requiredMessages = map[string]string{
	FieldTitle:   MsgTitleRequired,
	FieldContent: MsgContentRequired,
}
