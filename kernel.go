// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "math"

// _MINFREENODES is the minimal number of nodes (%) that has to be left after a
// garbage collect unless a resize should be done.
const _MINFREENODES int = 20

// _MAXVAR is the maximal number of levels in the BDD. We use only the first 21
// bits for encoding levels; bit 22 is used for marking nodes during traversals.
const _MAXVAR int32 = 0x1FFFFF

// _MARK is the bit of the level field used to protect nodes during a sweep.
const _MARK int32 = 0x200000

// _MAXREFCOUNT pins a node in the table. It is used for the terminal and the
// projection nodes of the variables, which live as long as the manager.
const _MAXREFCOUNT int32 = math.MaxInt32

// _DEFAULTMAXNODEINC is the default value for the maximal increase in the
// number of nodes during a resize. It is approx. one million nodes (1 048 576).
const _DEFAULTMAXNODEINC int = 1 << 20

// _DEFAULTCACHESIZE is the number of entries in each operation cache when no
// Cachesize option is given.
const _DEFAULTCACHESIZE int = 10000

// _MAXTTVARS bounds the number of variables accepted by the truth table
// encoder, so that 1 << numVars fits comfortably in an int.
const _MAXTTVARS int = 30
