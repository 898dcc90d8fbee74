package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"fixdesk/internal/shared/biztime"
)

// MaxCommentLength is the maximum accepted comment body length in characters.
const MaxCommentLength = 2000

// Comment is an append-only note on a ticket. Comments are never edited or
// deleted individually; they only disappear when the ticket is deleted.
type Comment struct {
	id        uint
	ticketID  uint
	authorID  uint
	message   string
	createdAt time.Time
}

func NewComment(ticketID uint, authorID uint, message string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message cannot be empty")
	}
	if utf8.RuneCountInString(message) > MaxCommentLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", MaxCommentLength)
	}

	return &Comment{
		ticketID:  ticketID,
		authorID:  authorID,
		message:   message,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	message string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		message:   message,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) AuthorID() uint       { return c.authorID }
func (c *Comment) Message() string      { return c.message }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
