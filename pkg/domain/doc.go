/*
Package domain contains the core models of the ccstrace engine.

It defines the CCS process terms and the records the engine produces while
deriving transitions. This package is kept pure and free of I/O.

# Key Entities

  - Action: an input or output on a channel, with Complement and Renamed.
  - Term: the immutable tagged union of processes (Nil, Name, Prefix, Choice,
    Compose, Restrict, Relabel, Recurse), with structural equality, a canonical
    key and a stable hash.
  - Context: restricted channels and relabelings active above a subterm.
  - Step, Transition: the derivation of a single move, built leaf first.
  - State: the trace driver's snapshot (current term, visited set, halt reason).
*/
package domain
