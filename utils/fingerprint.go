package utils

import "hash/fnv"

// FingerprintString hashes s with FNV-64a.
func FingerprintString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
