package sctp

// rawSock is the owning handle of one kernel SCTP socket and the only
// type in the package that issues socket system calls. Each operation
// is a single syscall plus errno translation; policy (listen backlogs,
// implicit binds, iteration) lives in the facade types.
//
// A rawSock owns its descriptor: close releases it exactly once and
// every facade constructor arranges for close on its error paths. dup
// creates a second, independently owned handle over the same kernel
// socket.
type rawSock struct {
	fd     int
	family int
	kind   socketKind
}
