package domain

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")
var ErrBadCredentials = errors.New("bad credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrAdNotFound = errors.New("ad not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrImageNotFound = errors.New("image not found")
