package domain

import "errors"

// Domain errors.
var (
	ErrInvalidEncoding  = errors.New("invalid base64 encoding")
	ErrUnsupportedURL   = errors.New("unsupported url")
	ErrUnsupportedImage = errors.New("unsupported image")
	ErrInvalidRemote    = errors.New("invalid git remote url")
	ErrRemoteNotFound   = errors.New("git remote not found")
	ErrInvalidIndex     = errors.New("index must be a positive number")
	ErrInvalidIssueType = errors.New("type must be issues or pulls")
	ErrNotGitRepository = errors.New("not a git repository (or any of the parent directories)")
	ErrConfigExists     = errors.New("config file already exists")
)
