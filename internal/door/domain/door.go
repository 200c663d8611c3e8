package domain

import "time"

// Door owns its secret and door share. Both are created together and never
// change afterwards.
type Door struct {
	Name      string
	Share     []byte // 4L bytes, handed to the physical reader
	Secret    []byte // L bytes, never exposed on a read path
	CreatedAt time.Time
}
