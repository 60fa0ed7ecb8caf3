// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "math/big"

// Table sizes are prime numbers so that the hash functions spread entries over
// all the buckets.

func hasEasyFactors(src int) bool {
	for _, p := range [...]int{3, 5, 7, 11, 13} {
		if src != p && src%p == 0 {
			return true
		}
	}
	return false
}

func isPrime(src int) bool {
	if src < 2 {
		return false
	}
	if src == 2 {
		return true
	}
	if src%2 == 0 || hasEasyFactors(src) {
		return false
	}
	// ProbablyPrime is 100% accurate for inputs less than 2⁶⁴.
	return big.NewInt(int64(src)).ProbablyPrime(0)
}

// primeGTE returns the smallest odd prime greater or equal to src.
func primeGTE(src int) int {
	if src <= 3 {
		return 3
	}
	if src%2 == 0 {
		src++
	}
	for !isPrime(src) {
		src += 2
	}
	return src
}

// primeLTE returns the largest odd prime lower or equal to src, or 3.
func primeLTE(src int) int {
	if src <= 3 {
		return 3
	}
	if src%2 == 0 {
		src--
	}
	for !isPrime(src) {
		src -= 2
	}
	return src
}
