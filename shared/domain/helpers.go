package domain

import (
	"fmt"
	"time"
)

// for debug
func (t *Thread) String() string {
	return fmt.Sprintf("[id:%d, title:%s, author:%s, created:%s, comments:%d, views:%d]",
		t.Id, t.Title, t.Author, t.CreatedAt.Format(time.StampMilli), t.CommentCount, t.ViewCount)
}
