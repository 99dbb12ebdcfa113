// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Mount is the predicate function for mount builders.
type Mount func(*sql.Selector)

// ThreadMapping is the predicate function for threadmapping builders.
type ThreadMapping func(*sql.Selector)
