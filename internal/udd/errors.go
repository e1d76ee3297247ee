package udd

import "errors"

// ErrOutOfMemory is returned when a grid build or a per-voxel triangle-list
// growth would exceed MaxVoxels or MaxVoxelRefs (see BuildOptions). Go's make/append do
// not surface allocation failure the way C's malloc does — this sentinel
// is how the core honors §7's "OutOfMemory ... fatal, propagated to
// caller" without pretending Go can observe real allocator failure.
var ErrOutOfMemory = errors.New("udd: out of memory building grid")

// ErrPreconditionViolation is returned by BuildGrid for inverted scene
// bounds (Min[a] > Max[a] on some axis). Flat bounds (Min[a] == Max[a])
// are accepted, since inflation makes them strict. Other precondition
// violations (a zero-length ray direction, degenerate triangle planes)
// are not detected and remain undefined behavior the caller must avoid,
// as the spec allows.
var ErrPreconditionViolation = errors.New("udd: precondition violation")
