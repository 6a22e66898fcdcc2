// Package agent implements the conversational dispatch loop: submit the
// history to the model gateway, execute any tool the model requests, feed the
// result back, and repeat until the model produces text. Failures never abort
// the process; they are narrated back into the conversation so the model (or
// the user) can react.
package agent
