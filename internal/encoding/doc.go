// Package encoding implements the column encodings of an encoded function.
//
// A column is the sequence of x-coordinates or of y-coordinates of a function.
// Raw columns store each float64 as its IEEE-754 bits in a chosen byte order.
// Gorilla columns store the first value verbatim and every following value as
// the XOR with its predecessor, keeping only the bits between the leading and
// trailing zeros. Evenly spaced x-coordinates and smooth y-values share most
// of their exponent and high mantissa bits, so the XORs are short.
//
// See https://www.vldb.org/pvldb/vol8/p1816-teller.pdf for the Gorilla
// algorithm.
package encoding
