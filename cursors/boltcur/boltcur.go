// Package boltcur exposes the content of a bolt bucket through the cursor protocol,
// so storage backed sequences can be normalized and processed
// with the same generic code as in-memory ones.
package boltcur

import (
	"bytes"

	"github.com/boltdb/bolt"

	"go.llib.dev/cursorkit"
)

// KV is a single key value pair of a bolt bucket.
// Key and Value are only valid for the lifetime of the bolt transaction they came from.
type KV struct {
	Key   []byte
	Value []byte
}

// Cursor traverses the key value pairs of a bolt bucket in key order.
// A Cursor is bound to the transaction its bucket belongs to,
// and must not be used after that transaction ended.
type Cursor struct {
	bucket *bolt.Bucket
	cursor *bolt.Cursor
	kv     KV
	done   bool
}

// Begin returns a cursor standing on the first key of the bucket.
// For an empty bucket the returned cursor is already exhausted.
func Begin(b *bolt.Bucket) *Cursor {
	cur := &Cursor{bucket: b, cursor: b.Cursor()}
	cur.kv.Key, cur.kv.Value = cur.cursor.First()
	cur.done = cur.kv.Key == nil
	return cur
}

// End returns the position every exhausted cursor of the bucket is equal to.
func End(b *bolt.Bucket) *Cursor {
	return &Cursor{bucket: b, done: true}
}

// Bucket returns the whole content of the bucket as a range.
func Bucket(b *bolt.Bucket) cursorkit.Range[KV, *KV, *Cursor] {
	return cursorkit.Over[KV, *KV](Begin(b), End(b))
}

func (c *Cursor) Deref() KV {
	return c.kv
}

func (c *Cursor) Member() *KV {
	return &c.kv
}

func (c *Cursor) Next() *Cursor {
	if c.done {
		return c
	}
	c.kv.Key, c.kv.Value = c.cursor.Next()
	if c.kv.Key == nil {
		c.kv = KV{}
		c.done = true
	}
	return c
}

func (c *Cursor) Step() *Cursor {
	prev := c.Clone()
	c.Next()
	return prev
}

// Equal compares positions by current key.
// All exhausted cursors of a bucket count as the same position.
func (c *Cursor) Equal(oth *Cursor) bool {
	if c.done || oth.done {
		return c.done == oth.done
	}
	return bytes.Equal(c.kv.Key, oth.kv.Key)
}

func (c *Cursor) Unequal(oth *Cursor) bool {
	return !c.Equal(oth)
}

// Clone opens a fresh bolt cursor on the bucket and seeks it to the current key,
// so the copy can advance without moving the original.
func (c *Cursor) Clone() *Cursor {
	clone := &Cursor{bucket: c.bucket, done: c.done}
	if c.done {
		return clone
	}
	clone.cursor = c.bucket.Cursor()
	clone.kv.Key, clone.kv.Value = clone.cursor.Seek(c.kv.Key)
	return clone
}

// CursorCategory declares forward strength:
// a bucket is stable within its transaction,
// repeated passes observe the same keys in the same order.
func (c *Cursor) CursorCategory() cursorkit.Category {
	return cursorkit.CategoryForward
}

var _ cursorkit.Cursor[KV, *KV, *Cursor] = (*Cursor)(nil)
var _ cursorkit.Categorized = (*Cursor)(nil)
