// Package flags enumerates and analyzes the flags of an abstract polytope.
//
// What:
//
//   - Flag: a maximal chain, one element index per rank -1..n.
//   - Iterator / Walk: lazy depth-first enumeration over ranks 0..n-1,
//     extending the partial chain by each superelement of its last element.
//     A rank with no continuation stops with ErrInvalidChain.
//   - Engine: memoized Count (dynamic programme, no enumeration), All,
//     Index and the flag-adjacency table.
//   - Change: the unique flag differing from f at one rank.
//   - IsOrientable: bipartite check of the flag-adjacency graph.
//   - IsConnected, Orbits: flag components under chosen flag-change words.
//   - Isomorphic: flag-BFS isomorphism test.
//
// Why:
//
//   - Orientability and flag-connectivity are flag properties.
//   - Petrie polygons are flag orbits under <r0·r2, r1>.
//   - Isomorphism is needed to compare constructions that index differently.
//
// Complexity:
//
//   - Iterator:     O(n) amortized per flag, O(n) memory.
//   - Engine.Count: O(I), I = number of incidences.
//   - Adjacency:    O(F · n · d), built once per Engine.
//
// Errors:
//
//   - ErrPolytopeNil     nil polytope argument
//   - ErrInvalidChain    chain without continuation, bad flag, non-unique change
//   - core.ErrOutOfRange rank argument outside 0..n-1
//   - ErrStop            callback sentinel for Walk; never returned by Walk
package flags
