package ecs

import "unsafe"

// iface mirrors the runtime layout of a non-empty interface value. It is used
// to pull the data pointer out of an `any` without allocating.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
