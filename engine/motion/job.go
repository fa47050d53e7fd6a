// Package motion provides the runtime job types that transform pose data every frame.
// Jobs are plain, reusable command objects: the caller populates input and output
// references, optionally calls Validate to check them, then calls Run to execute the
// numeric work. Jobs never allocate, never own their referenced data, and carry no
// state between calls, which is what makes distinct job instances safe to run
// concurrently across worker threads with no coordination.
package motion

// Job is the capability contract shared by every concrete job type. Each job
// implements the two operations independently; there is no shared base state.
type Job interface {
	// Validate checks the structural correctness of the job's references without
	// touching its output or paying any numeric cost. Callers can batch-check many
	// jobs cheaply, for example to surface configuration warnings in an editor.
	//
	// Returns:
	//   - bool: true if the job's references are all usable
	Validate() bool

	// Run revalidates the job and, if valid, executes its computation, writing the
	// result through the job's output reference. On validation failure it returns
	// false immediately and leaves the output untouched. Run is deterministic and
	// idempotent: running twice with unchanged inputs yields bit-identical outputs.
	//
	// Returns:
	//   - bool: true if the job ran, false if validation failed
	Run() bool
}
