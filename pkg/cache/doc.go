// Package cache provides a small generic, thread-safe LRU cache.
//
// It backs in-process memoization such as compiled regular expressions keyed
// by caller input, where the key space is unbounded and memory must not grow
// with it:
//
//	patterns := cache.NewLRU[string, *regexp.Regexp](256)
//	re := patterns.GetOrAdd(expr, func() *regexp.Regexp {
//		return regexp.MustCompile(expr)
//	})
//
// All operations are O(1) and guarded by a single mutex.
package cache
