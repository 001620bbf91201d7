package enum

import "errors"

var (
	ErrInvalidUserRole     = errors.New("invalid user role")
	ErrInvalidCategory     = errors.New("invalid rating category")
	ErrInvalidTopicType    = errors.New("invalid topic type")
	ErrInvalidTopicStatus  = errors.New("invalid topic status")
	ErrInvalidVoteType     = errors.New("invalid vote type")
	ErrInvalidMemberStatus = errors.New("invalid member status")
	ErrInvalidLocation     = errors.New("invalid house location")
)
