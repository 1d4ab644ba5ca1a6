// Package vampire implements detection of vampire numbers.
//
// A vampire number is a composite integer with an even number of digits
// whose digits can be rearranged into two factors (fangs) of half the
// digit length each, excluding pairs where both fangs end in zero. The
// classic example is 1260 = 21 x 60.
//
// Detection is a pure function: no I/O, no shared state, and the same
// input always yields the same finding. That referential transparency is
// what lets the scan coordinator run detections concurrently without any
// locking.
package vampire
