// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/relay-agents/relay/ent/chatsession"
	"github.com/relay-agents/relay/ent/event"
	"github.com/relay-agents/relay/ent/mount"
	"github.com/relay-agents/relay/ent/schema"
	"github.com/relay-agents/relay/ent/threadmapping"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescEventCount is the schema descriptor for event_count field.
	chatsessionDescEventCount := chatsessionFields[5].Descriptor()
	// chatsession.DefaultEventCount holds the default value on creation for the event_count field.
	chatsession.DefaultEventCount = chatsessionDescEventCount.Default.(int)
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[7].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	mountFields := schema.Mount{}.Fields()
	_ = mountFields
	// mountDescCreatedAt is the schema descriptor for created_at field.
	mountDescCreatedAt := mountFields[4].Descriptor()
	// mount.DefaultCreatedAt holds the default value on creation for the created_at field.
	mount.DefaultCreatedAt = mountDescCreatedAt.Default.(func() time.Time)
	threadmappingFields := schema.ThreadMapping{}.Fields()
	_ = threadmappingFields
	// threadmappingDescCreatedAt is the schema descriptor for created_at field.
	threadmappingDescCreatedAt := threadmappingFields[3].Descriptor()
	// threadmapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	threadmapping.DefaultCreatedAt = threadmappingDescCreatedAt.Default.(func() time.Time)
	// threadmappingDescUpdatedAt is the schema descriptor for updated_at field.
	threadmappingDescUpdatedAt := threadmappingFields[4].Descriptor()
	// threadmapping.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	threadmapping.DefaultUpdatedAt = threadmappingDescUpdatedAt.Default.(func() time.Time)
	// threadmapping.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	threadmapping.UpdateDefaultUpdatedAt = threadmappingDescUpdatedAt.UpdateDefault.(func() time.Time)
}
