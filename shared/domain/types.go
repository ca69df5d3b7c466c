package domain

type (
	ThreadId      = int64
	ThreadTitle   = string
	ThreadContent = string
	Author        = string
	FieldName     = string
)
