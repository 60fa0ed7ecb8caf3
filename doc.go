// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package robdd defines a manager for Reduced Ordered Binary Decision Diagrams
(ROBDD) with complemented edges, a data structure used to efficiently represent
Boolean functions over a fixed set of variables.

# Basics

Each Manager has a fixed number of variables, Varnum, declared when it is
created (using the function New) and each variable is represented by an
(integer) index in the interval [0..Varnum), called a level. Variables with a
lower index are closer to the root.

Most operations return an Edge; that is a reference to a node of the manager
together with a polarity bit. A complemented edge denotes the negation of the
function rooted at the node, so negation is a constant time operation and a
function and its negation share all their nodes. There is a single terminal
node, for the constant True; False is its complement. To keep the
representation canonical, the then branch of a node is never complemented.
Hence two Edges of the same manager denote the same function if and only if
they are equal.

Operations that return an Edge do not return an error. Instead, they return
EdgeNull and record the error in the manager (see methods Errored and Err),
which makes it possible to chain calls and check for errors only at the end.

# Memory management

Each node carries a reference count: the number of its parents plus the number
of holds taken by the client with AddRef. Results of operations are not held,
so they must be protected with AddRef before calling another operation that
may trigger a garbage collection, and released with DelRef afterwards. A node
whose count drops to zero is removed immediately; nodes that were never held
are swept when the node table is full (or with an explicit call to GC). The
operation caches are never flushed: each entry records the generation of the
nodes it mentions, so entries about reclaimed nodes are simply ignored.

# Encoding and exporting functions

Function FromTruthTable builds a diagram from the truth table of a function,
that can be parsed from a hexadecimal or binary string with ParseTruthTable.
Diagrams can be exported as a BLIF netlist (DumpBlif), a Graphviz graph
(DumpDot) or an and-inverter graph in the AIGER format (DumpAiger).

# Use of build tags

To get access to better statistics about the unique table, and to check the
consistency of the node table after each garbage collection, you can compile
your executable with the build tag `debug`.
*/
package robdd
